// Package specialty maps symptom descriptions onto medical specialties.
package specialty

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default is returned when no keyword matches.
const Default = "General Medicine"

// Entry is one row of the specialty table.
type Entry struct {
	Name        string
	Keywords    []string
	Description string
}

// table is scanned in order; the first keyword hit wins, so reordering it
// changes classification results.
var table = []Entry{
	{
		Name:        "Cardiologist",
		Keywords:    []string{"heart", "chest", "blood pressure", "lungs"},
		Description: "Heart and cardiovascular system specialist",
	},
	{
		Name:        "Dermatologist",
		Keywords:    []string{"skin", "acne", "rash"},
		Description: "Skin, hair, and nail conditions specialist",
	},
	{
		Name:        "Pediatrician",
		Keywords:    []string{"child", "infant", "pediatric"},
		Description: "Children's health specialist",
	},
	{
		Name:        "Neurologist",
		Keywords:    []string{"brain", "headache", "nerve"},
		Description: "Brain, spinal cord, and nervous system specialist",
	},
	{
		Name:        "Orthopaedic",
		Keywords:    []string{"bone", "joint", "muscle", "fracture", "broken", "sprain", "strain"},
		Description: "Bone and joint specialist",
	},
	{
		Name:        "Psychiatrist",
		Keywords:    []string{"anxiety", "depression", "mental"},
		Description: "Mental health specialist",
	},
	{
		Name:        Default,
		Keywords:    []string{"fever", "cold", "cough"},
		Description: "Primary care and general health conditions",
	},
}

var lower = cases.Lower(language.Und)

// Classify returns the first specialty whose keywords occur in symptoms.
func Classify(symptoms string) string {
	text := lower.String(symptoms)
	for _, e := range table {
		for _, kw := range e.Keywords {
			if strings.Contains(text, kw) {
				return e.Name
			}
		}
	}
	return Default
}

// Lookup returns the table entry with the exact name.
func Lookup(name string) (Entry, bool) {
	for _, e := range table {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Description returns the description of name, or "" if it is not listed.
func Description(name string) string {
	e, _ := Lookup(name)
	return e.Description
}

// All returns a copy of the table in scan order.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}
