package consultation

import (
	"context"

	log "github.com/sirupsen/logrus"

	"medical-report-assistant/internal/normalize"
	"medical-report-assistant/internal/specialty"
)

func (s *service) AnalyzeReport(ctx context.Context, text, lang string) (AnalysisResult, error) {
	if s.model == nil {
		log.Error("model is not initialized, cannot analyze report")
		return nil, ErrModelUnavailable
	}

	raw, err := s.model.Generate(ctx, buildReportPrompt(text, lang))
	if err != nil {
		log.WithError(err).Error("report analysis failed")
		return nil, &Error{Code: CodeModelFailed, Message: "Analysis failed", Cause: err}
	}

	doc := normalize.Parse(raw)
	if doc.Failed() {
		log.Warn("model answer for report was not valid JSON")
	}

	result := mergeAnalysis(doc)
	annotateSpecialists(result)
	return result, nil
}

// mergeAnalysis replaces every top-level section of doc that is missing or
// falsy with the default section. Present values are kept as sent.
func mergeAnalysis(doc normalize.Document) AnalysisResult {
	for key, def := range defaultAnalysis() {
		if normalize.Falsy(doc[key]) {
			doc[key] = def
		}
	}
	return doc
}

// annotateSpecialists adds the table description to the primary and
// secondary specialists whose name is a known specialty.
func annotateSpecialists(doc normalize.Document) {
	for _, role := range []string{"primary", "secondary"} {
		sp, ok := doc.At("recommended_doctor", role).(map[string]any)
		if !ok {
			continue
		}
		name, _ := sp["specialist"].(string)
		if e, ok := specialty.Lookup(name); ok {
			sp["specialty_description"] = e.Description
		}
	}
}
