package consultation

import (
	"context"
	"os"
	"sync"
)

type fakeModel struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (m *fakeModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

// fakeExtractor records the path it was given and whether the file existed
// at that moment.
type fakeExtractor struct {
	text    string
	err     error
	path    string
	existed bool
}

func (e *fakeExtractor) ExtractText(path string) (string, error) {
	e.path = path
	_, statErr := os.Stat(path)
	e.existed = statErr == nil
	return e.text, e.err
}

const fullAnalysis = `{
  "summary": {
    "overview": "Elevated troponin with chest pain",
    "severity_assessment": "severe",
    "key_findings": ["troponin 0.8 ng/mL"],
    "urgent_attention": "yes",
    "follow_up_timeline": "immediate"
  },
  "symptoms": [{"symptom": "chest pain", "severity": "severe", "duration": "2 hours", "related_conditions": ["angina"]}],
  "possible_diseases": [{"disease": "Myocardial infarction", "confidence": "high", "reasoning": "troponin", "common_complications": ["arrhythmia"]}],
  "recommended_doctor": {
    "primary": {"specialist": "Cardiologist", "specialty_area": "Interventional", "urgency": "immediate"},
    "secondary": {"specialist": "Neurologist", "specialty_area": "Stroke", "urgency": "soon"},
    "reasoning": "cardiac markers"
  },
  "precautions": [{"precaution": "Rest", "importance": "critical", "duration": "until seen", "details": "avoid exertion"}],
  "additional_tests": [{"test": "ECG", "purpose": "rhythm", "urgency": "immediate"}],
  "lifestyle_recommendations": [{"category": "diet", "recommendation": "low salt", "importance": "high"}]
}`

const fullPrecautions = `{
  "initial_assessment": {"severity": "moderate", "immediate_action_required": true, "seek_emergency": false},
  "precautions": [{"category": "Activity", "measures": ["avoid exertion"], "priority": "high"}],
  "lifestyle_recommendations": [{"area": "diet", "suggestions": ["less salt"], "duration": "long-term"}],
  "home_remedies": [{"remedy": "rest", "instructions": "lie down", "caution": "none"}],
  "when_to_seek_emergency": ["pain spreads to arm"]
}`
