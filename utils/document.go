package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF-")

// IsPDF reports whether the byte stream carries the PDF magic header
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// DocumentExtractor converts PDF bytes into plain text
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText returns the concatenated plain text of all pages in document
// order. Structural information (headings, tables) is not preserved. Corrupt,
// encrypted, and empty inputs all come back as a single extraction error; the
// parser's own error taxonomy is not re-derived for callers.
func (e *DocumentExtractor) ExtractText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty document")
	}
	if !IsPDF(data) {
		return "", fmt.Errorf("not a PDF document")
	}

	// The parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := extractPageText(page)
		if err != nil {
			// A single unreadable page should not sink the document
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

// extractPageText guards GetPlainText, which panics on some malformed content
// streams instead of returning an error.
func extractPageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page content stream error: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}
