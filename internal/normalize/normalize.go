// Package normalize coerces free-text model output into a JSON object.
package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ParseFailedMessage is the error value of a document produced when no
// strategy could parse the model output.
const ParseFailedMessage = "Failed to parse AI response"

// Document is a decoded JSON object.
type Document map[string]any

// objectSpan matches from the first opening brace to the last closing brace.
var objectSpan = regexp.MustCompile(`(?s)\{.*\}`)

// Parse tries, in order: strict decoding, decoding of the first brace
// delimited span, and decoding after replacing single quotes with double
// quotes. When all fail it returns an error-tagged document carrying text.
func Parse(text string) Document {
	if doc, ok := decode(text); ok {
		return doc
	}

	if span := objectSpan.FindString(text); span != "" {
		if doc, ok := decode(span); ok {
			return doc
		}
	}

	if doc, ok := decode(strings.ReplaceAll(text, "'", `"`)); ok {
		return doc
	}

	return Document{
		"error":        ParseFailedMessage,
		"raw_response": text,
	}
}

// decode only accepts a top-level object.
func decode(s string) (Document, bool) {
	var doc Document
	if err := json.Unmarshal([]byte(s), &doc); err != nil || doc == nil {
		return nil, false
	}
	return doc, true
}

// Failed reports whether the document is the error-tagged fallback.
func (d Document) Failed() bool {
	msg, _ := d["error"].(string)
	_, hasRaw := d["raw_response"]
	return msg == ParseFailedMessage && hasRaw
}

// String returns the value at key when it is a string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// At walks nested objects along path and returns the value found, or nil.
func (d Document) At(path ...string) any {
	var cur any = map[string]any(d)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[key]
	}
	return cur
}

// Falsy reports whether v would be treated as absent: nil, false, zero,
// the empty string, an empty list or an empty object.
func Falsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case json.Number:
		return t == "0"
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case Document:
		return len(t) == 0
	}
	return false
}
