package consultation

import (
	"context"

	log "github.com/sirupsen/logrus"

	"medical-report-assistant/internal/normalize"
)

// Precautions returns the normalized model answer unchanged.
func (s *service) Precautions(ctx context.Context, symptoms, lang string) PrecautionsResult {
	if s.model == nil {
		log.Error("model is not initialized, returning fallback precautions")
		return fallbackPrecautions(ErrModelUnavailable.Message)
	}

	log.WithField("symptoms", truncate(symptoms, 50)).Info("requesting precautions")
	raw, err := s.model.Generate(ctx, buildPrecautionsPrompt(symptoms, lang))
	if err != nil {
		log.WithError(err).Error("precautions generation failed")
		return fallbackPrecautions("Precautions generation failed: " + err.Error())
	}

	doc := normalize.Parse(raw)
	if doc.Failed() {
		log.Warn("model answer for precautions was not valid JSON")
	}
	return doc
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
