package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/litehr/cv-summarizer/gemini"
	"github.com/litehr/cv-summarizer/models"
	"github.com/litehr/cv-summarizer/utils"
)

// MinTextLength is the minimum number of characters a CV must contain after
// extraction. Scanned or image-only PDFs extract to near-empty text and would
// otherwise produce a garbage summary.
const MinTextLength = 100

// Mode identifies how the CV content enters the pipeline
type Mode string

const (
	ModeUpload Mode = "upload"
	ModeURL    Mode = "url"
	ModeText   Mode = "text"
)

// TextGenerator produces a summary from a prompt. Satisfied by gemini.Client.
type TextGenerator interface {
	Summarize(ctx context.Context, prompt string) (string, error)
	Model() string
}

// TextExtractor converts document bytes to plain text. Satisfied by
// utils.DocumentExtractor.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// SourceFetcher downloads a document from a URL. Satisfied by fetcher.Fetcher.
type SourceFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Input is the request-scoped description of one summarization run. Exactly
// one of FileData, SourceURL, or Text is consulted, selected by Mode.
type Input struct {
	Mode Mode

	// Upload mode
	FileData []byte
	FileName string
	FileSize int64

	// URL mode
	SourceURL string

	// Text mode
	Text string

	JobPosition string
}

// Result carries the generated summary and its metadata. Nothing is persisted;
// the caller owns any storage.
type Result struct {
	Summary  string
	Metadata models.SummaryMetadata
}

// Summarizer orchestrates one summarization request: fetch (url mode) ->
// extract (upload/url mode) -> validate -> prompt -> generate. Each call is
// independent and stateless, so concurrent requests need no coordination.
type Summarizer struct {
	extractor TextExtractor
	fetcher   SourceFetcher
	generator TextGenerator
}

// NewSummarizer creates the summarization pipeline
func NewSummarizer(extractor TextExtractor, fetcher SourceFetcher, generator TextGenerator) *Summarizer {
	return &Summarizer{
		extractor: extractor,
		fetcher:   fetcher,
		generator: generator,
	}
}

// Summarize runs the pipeline for one request. Every failure comes back as a
// *models.SummaryError; partial progress (e.g. extraction succeeded, upstream
// failed) is reported as a full failure.
func (s *Summarizer) Summarize(ctx context.Context, input Input) (*Result, error) {
	log.Printf("[Pipeline] Starting summarization: mode=%s, jobPosition=%q", input.Mode, input.JobPosition)

	text, err := s.resolveText(ctx, input)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if len(text) < MinTextLength {
		return nil, &models.SummaryError{
			Kind:    models.KindInsufficientContent,
			Message: fmt.Sprintf("the CV must contain at least %d characters of text; scanned PDFs without a text layer cannot be summarized", MinTextLength),
			Detail:  fmt.Sprintf("got %d characters", len(text)),
		}
	}

	jobPosition := input.JobPosition
	if jobPosition == "" {
		jobPosition = gemini.JobPositionPlaceholder
	}

	prompt := gemini.BuildSummaryPrompt(text, input.JobPosition)

	summary, err := s.generator.Summarize(ctx, prompt)
	if err != nil {
		var sumErr *models.SummaryError
		if errors.As(err, &sumErr) {
			return nil, sumErr
		}
		return nil, &models.SummaryError{
			Kind:    models.KindUpstream,
			Message: "summary generation failed",
			Detail:  err.Error(),
		}
	}

	log.Printf("[Pipeline] Summarization complete: mode=%s, textChars=%d", input.Mode, len(text))

	return &Result{
		Summary: summary,
		Metadata: models.SummaryMetadata{
			FileName:    input.FileName,
			FileSize:    input.FileSize,
			TextLength:  len(text),
			JobPosition: jobPosition,
			GeneratedAt: time.Now().UTC(),
			Model:       s.generator.Model(),
		},
	}, nil
}

// resolveText turns the ingestion mode into plain CV text. Text mode skips
// extraction entirely; url mode extracts only when the fetched document is a
// PDF and otherwise treats the body as plain text.
func (s *Summarizer) resolveText(ctx context.Context, input Input) (string, error) {
	switch input.Mode {
	case ModeText:
		return input.Text, nil

	case ModeUpload:
		return s.extract(input.FileData)

	case ModeURL:
		data, err := s.fetcher.Fetch(ctx, input.SourceURL)
		if err != nil {
			return "", err
		}
		if utils.IsPDF(data) {
			return s.extract(data)
		}
		return string(data), nil

	default:
		return "", models.NewSummaryError(models.KindSourceFetch,
			fmt.Sprintf("unknown ingestion mode %q", input.Mode))
	}
}

func (s *Summarizer) extract(data []byte) (string, error) {
	text, err := s.extractor.ExtractText(data)
	if err != nil {
		log.Printf("[Pipeline] Extraction failed: %v", err)
		return "", &models.SummaryError{
			Kind:    models.KindExtraction,
			Message: "could not read the PDF; the file may be corrupt, encrypted, or not a PDF",
			Detail:  err.Error(),
		}
	}
	return text, nil
}
