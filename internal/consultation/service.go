package consultation

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"medical-report-assistant/internal/agent"
	"medical-report-assistant/internal/directory"
	"medical-report-assistant/internal/report"
	"medical-report-assistant/internal/specialty"
)

// DoctorDirectory finds available doctors for a specialty.
// We define it here to decouple from the store backends.
type DoctorDirectory interface {
	Lookup(ctx context.Context, specialty string) []directory.DoctorRecord
}

type Service interface {
	// AnalyzeReport interprets already extracted report text.
	AnalyzeReport(ctx context.Context, text, lang string) (AnalysisResult, error)
	// AnalyzeReportFile extracts the PDF at path and analyzes it.
	AnalyzeReportFile(ctx context.Context, path, lang string) (AnalysisResult, error)
	// Precautions never fails; problems are reported inside the result.
	Precautions(ctx context.Context, symptoms, lang string) PrecautionsResult
	Recommend(ctx context.Context, symptoms, lang string) (*Recommendation, error)
}

type service struct {
	model     agent.Model
	doctors   DoctorDirectory
	extractor report.Extractor
}

// NewService wires the collaborators. A nil model disables AI features, a
// nil directory reports no doctors.
func NewService(model agent.Model, doctors DoctorDirectory, extractor report.Extractor) Service {
	if doctors == nil {
		doctors = directory.NewGateway(nil)
	}
	if extractor == nil {
		extractor = report.NewPDFExtractor()
	}
	return &service{
		model:     model,
		doctors:   doctors,
		extractor: extractor,
	}
}

func (s *service) AnalyzeReportFile(ctx context.Context, path, lang string) (AnalysisResult, error) {
	text, err := s.extractor.ExtractText(path)
	if err != nil {
		cause := err
		var pdfErr *report.Error
		if errors.As(err, &pdfErr) {
			cause = pdfErr.Cause
		}
		return nil, &Error{Code: CodeExtractionFailed, Message: "Error reading PDF", Cause: cause}
	}
	return s.AnalyzeReport(ctx, text, lang)
}

func (s *service) Recommend(ctx context.Context, symptoms, lang string) (*Recommendation, error) {
	if symptoms == "" {
		return nil, invalidInput("Symptoms are required.")
	}
	if lang == "" {
		lang = DefaultLanguage
	}

	name := specialty.Classify(symptoms)
	doctors := s.doctors.Lookup(ctx, name)
	precautions := s.Precautions(ctx, symptoms, lang)

	rec := &Recommendation{
		RecommendedSpecialty:          name,
		SpecialtyDescription:          specialty.Description(name),
		AvailableDoctors:              doctors,
		DoctorsAvailable:              len(doctors) > 0,
		PrecautionsAndRecommendations: precautions,
	}
	if !rec.DoctorsAvailable {
		rec.DoctorAvailabilityMessage = "No " + name + " doctors are currently available."
	}

	log.WithFields(log.Fields{
		"specialty": name,
		"doctors":   len(doctors),
	}).Info("recommendation ready")
	return rec, nil
}
