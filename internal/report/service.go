// Package report extracts plain text from uploaded medical report PDFs.
package report

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	log "github.com/sirupsen/logrus"
)

// Error is returned when a report cannot be read.
type Error struct {
	Path  string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error reading PDF: %v", e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Extractor turns a PDF on disk into text.
type Extractor interface {
	ExtractText(path string) (string, error)
}

// PDFExtractor implements Extractor with github.com/ledongthuc/pdf.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (PDFExtractor) ExtractText(path string) (string, error) {
	return ExtractText(path)
}

// ExtractText reads every page of the PDF at path and joins the page texts
// with joinPages.
func ExtractText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("path", path).Errorf("recovered from panic in pdf reader: %v", r)
			text = ""
			err = &Error{Path: path, Cause: fmt.Errorf("panic during PDF parsing: %v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &Error{Path: path, Cause: err}
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &Error{Path: path, Cause: fmt.Errorf("page %d: %w", i, err)}
		}
		pages = append(pages, pageText)
	}

	return joinPages(pages), nil
}

// joinPages joins the non-empty page texts with single spaces. Page text is
// kept as the reader returned it.
func joinPages(pages []string) string {
	var nonEmpty []string
	for _, p := range pages {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
