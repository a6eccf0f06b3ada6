package consultation

import (
	"encoding/json"
	"fmt"

	"medical-report-assistant/internal/directory"
	"medical-report-assistant/internal/normalize"
)

// Report analysis

type Summary struct {
	Overview           string   `json:"overview"`
	SeverityAssessment string   `json:"severity_assessment"`
	KeyFindings        []string `json:"key_findings"`
	UrgentAttention    string   `json:"urgent_attention"`
	FollowUpTimeline   string   `json:"follow_up_timeline"`
}

type Symptom struct {
	Symptom           string   `json:"symptom"`
	Severity          string   `json:"severity"`
	Duration          string   `json:"duration"`
	RelatedConditions []string `json:"related_conditions"`
}

type PossibleDisease struct {
	Disease             string   `json:"disease"`
	Confidence          string   `json:"confidence"`
	Reasoning           string   `json:"reasoning"`
	CommonComplications []string `json:"common_complications"`
}

type Specialist struct {
	Specialist           string `json:"specialist"`
	SpecialtyArea        string `json:"specialty_area"`
	Urgency              string `json:"urgency"`
	SpecialtyDescription string `json:"specialty_description,omitempty"`
}

type RecommendedDoctor struct {
	Primary   *Specialist `json:"primary"`
	Secondary *Specialist `json:"secondary"`
	Reasoning string      `json:"reasoning"`
}

type ReportPrecaution struct {
	Precaution string `json:"precaution"`
	Importance string `json:"importance"`
	Duration   string `json:"duration"`
	Details    string `json:"details"`
}

type AdditionalTest struct {
	Test    string `json:"test"`
	Purpose string `json:"purpose"`
	Urgency string `json:"urgency"`
}

type LifestyleRecommendation struct {
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
	Importance     string `json:"importance"`
}

// AnalysisResult is the response of POST /analyze: the model answer with
// missing or empty sections taken from the default template. Keys the
// model adds are kept, as are "error" and "raw_response" when the answer
// could not be parsed.
type AnalysisResult = normalize.Document

// analysisTemplate lists the sections expected in a report analysis.
type analysisTemplate struct {
	Summary                  Summary                   `json:"summary"`
	Symptoms                 []Symptom                 `json:"symptoms"`
	PossibleDiseases         []PossibleDisease         `json:"possible_diseases"`
	RecommendedDoctor        RecommendedDoctor         `json:"recommended_doctor"`
	Precautions              []ReportPrecaution        `json:"precautions"`
	AdditionalTests          []AdditionalTest          `json:"additional_tests"`
	LifestyleRecommendations []LifestyleRecommendation `json:"lifestyle_recommendations"`
}

// defaultAnalysis is the template merged under every model answer. Each call
// returns a fresh document.
func defaultAnalysis() AnalysisResult {
	return toDocument(analysisTemplate{
		Summary: Summary{
			Overview:           "Unable to generate summary due to insufficient information",
			SeverityAssessment: "unknown",
			KeyFindings:        []string{"No significant findings detected"},
			UrgentAttention:    "unknown",
			FollowUpTimeline:   "routine",
		},
		Symptoms: []Symptom{{
			Symptom:           "No symptoms detected",
			Severity:          "unknown",
			Duration:          "unknown",
			RelatedConditions: []string{},
		}},
		PossibleDiseases: []PossibleDisease{{
			Disease:             "Unable to determine",
			Confidence:          "low",
			Reasoning:           "Insufficient information",
			CommonComplications: []string{},
		}},
		RecommendedDoctor: RecommendedDoctor{
			Primary: &Specialist{
				Specialist:    "General Medicine",
				SpecialtyArea: "General health assessment",
				Urgency:       "routine",
			},
			Reasoning: "Default recommendation due to insufficient information",
		},
		Precautions: []ReportPrecaution{{
			Precaution: "Consult a healthcare provider",
			Importance: "critical",
			Duration:   "until medical consultation",
			Details:    "Seek professional medical advice",
		}},
		AdditionalTests: []AdditionalTest{{
			Test:    "General health assessment",
			Purpose: "Baseline health evaluation",
			Urgency: "routine",
		}},
		LifestyleRecommendations: []LifestyleRecommendation{{
			Category:       "general",
			Recommendation: "Maintain healthy lifestyle",
			Importance:     "high",
		}},
	})
}

// Symptom precautions

type InitialAssessment struct {
	Severity                string `json:"severity"`
	ImmediateActionRequired bool   `json:"immediate_action_required"`
	SeekEmergency           bool   `json:"seek_emergency"`
}

type Precaution struct {
	Category string   `json:"category"`
	Measures []string `json:"measures"`
	Priority string   `json:"priority"`
}

// PrecautionsResult is the normalized model answer for a symptom
// description, or the fallback when no answer is available.
type PrecautionsResult = normalize.Document

type precautionsFallback struct {
	Error             string            `json:"error"`
	InitialAssessment InitialAssessment `json:"initial_assessment"`
	Precautions       []Precaution      `json:"precautions"`
}

func fallbackPrecautions(message string) PrecautionsResult {
	return toDocument(precautionsFallback{
		Error:             message,
		InitialAssessment: InitialAssessment{Severity: "unknown"},
		Precautions: []Precaution{{
			Category: "General Advice",
			Measures: []string{"Please consult with a healthcare professional for proper evaluation"},
			Priority: "high",
		}},
	})
}

// toDocument converts a static template into a mutable document.
func toDocument(v any) normalize.Document {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("consultation: encode template: %v", err))
	}
	var doc normalize.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		panic(fmt.Sprintf("consultation: decode template: %v", err))
	}
	return doc
}

// Recommendation

type RecommendRequest struct {
	Symptoms string `json:"symptoms"`
	Language string `json:"language"`
}

type Recommendation struct {
	RecommendedSpecialty          string                   `json:"recommended_specialty"`
	SpecialtyDescription          string                   `json:"specialty_description"`
	AvailableDoctors              []directory.DoctorRecord `json:"available_doctors"`
	DoctorsAvailable              bool                     `json:"doctors_available"`
	PrecautionsAndRecommendations PrecautionsResult        `json:"precautions_and_recommendations"`
	DoctorAvailabilityMessage     string                   `json:"doctor_availability_message,omitempty"`
}
