package specialty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		symptoms string
		want     string
	}{
		{"chest pain", "Cardiologist"},
		{"My BLOOD PRESSURE is high", "Cardiologist"},
		{"itchy rash on my arm", "Dermatologist"},
		{"my infant won't sleep", "Pediatrician"},
		{"terrible headache since morning", "Neurologist"},
		{"I think my wrist is broken", "Orthopaedic"},
		{"constant anxiety at work", "Psychiatrist"},
		{"fever and cough", "General Medicine"},
		{"I feel great", "General Medicine"},
		{"", "General Medicine"},
	}

	for _, tt := range tests {
		t.Run(tt.symptoms, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.symptoms))
		})
	}
}

func TestClassify_FirstTableMatchWins(t *testing.T) {
	// skin comes first in the text, heart comes first in the table
	assert.Equal(t, "Cardiologist", Classify("skin irritation and heart flutters"))
	assert.Equal(t, "Dermatologist", Classify("acne and a child's cough"))
}

func TestClassify_EveryKeywordMapsToItsEntry(t *testing.T) {
	for _, e := range All() {
		for _, kw := range e.Keywords {
			assert.Equal(t, e.Name, Classify("patient reports "+kw+" issues"), kw)
		}
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("Neurologist")
	assert.True(t, ok)
	assert.Equal(t, "Brain, spinal cord, and nervous system specialist", e.Description)

	_, ok = Lookup("Astrologer")
	assert.False(t, ok)
	assert.Empty(t, Description("Astrologer"))
	assert.Equal(t, "Primary care and general health conditions", Description(Default))
}

func TestAll_ReturnsCopy(t *testing.T) {
	entries := All()
	entries[0].Name = "changed"
	assert.Equal(t, "Cardiologist", All()[0].Name)
}
