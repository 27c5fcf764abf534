package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/litehr/cv-summarizer/config"
	"github.com/litehr/cv-summarizer/models"
	"github.com/litehr/cv-summarizer/pipeline"
	"github.com/litehr/cv-summarizer/utils"
)

// Summarizer is the pipeline surface the handlers depend on
type Summarizer interface {
	Summarize(ctx context.Context, input pipeline.Input) (*pipeline.Result, error)
}

// SummarizeHandler handles CV summarization requests
type SummarizeHandler struct {
	summarizer     Summarizer
	maxUploadBytes int64
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(summarizer Summarizer, cfg *config.Config) *SummarizeHandler {
	return &SummarizeHandler{
		summarizer:     summarizer,
		maxUploadBytes: cfg.MaxUploadBytes(),
	}
}

// Upload summarizes an uploaded PDF CV
// @Summary Summarize an uploaded CV
// @Description Extract text from an uploaded PDF CV and generate a structured hiring summary
// @Tags CV
// @Accept multipart/form-data
// @Produce json
// @Param cv formData file true "CV file (PDF, max 10MB)"
// @Param jobPosition formData string false "Target job position"
// @Param applicationId formData string false "Opaque application identifier, echoed back"
// @Success 200 {object} models.SummarizeResponse "Generated summary"
// @Failure 400 {object} models.SummarizeResponse "Invalid upload or unreadable PDF"
// @Failure 500 {object} models.SummarizeResponse "Summarization failed"
// @Router /cv/summarize/upload [post]
func (h *SummarizeHandler) Upload(c *gin.Context) {
	// Slack covers multipart framing so a file exactly at the limit still parses;
	// the declared size is checked against the precise ceiling below
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+64*1024)

	file, header, err := c.Request.FormFile("cv")
	if err != nil {
		if isBodyTooLarge(err) {
			h.respondError(c, h.tooLargeError())
			return
		}
		h.respondError(c, models.NewSummaryError(models.KindUnsupportedMediaType,
			"a PDF file is required in the 'cv' form field"))
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		h.respondError(c, h.tooLargeError())
		return
	}

	if !isPDFUpload(header.Header.Get("Content-Type"), header.Filename) {
		h.respondError(c, models.NewSummaryError(models.KindUnsupportedMediaType,
			"only PDF files are supported"))
		return
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		if isBodyTooLarge(err) {
			h.respondError(c, h.tooLargeError())
			return
		}
		h.respondError(c, &models.SummaryError{
			Kind:    models.KindUploadRead,
			Message: "failed to read the uploaded file",
			Detail:  err.Error(),
		})
		return
	}

	data := buf.Bytes()
	if !utils.IsPDF(data) {
		h.respondError(c, models.NewSummaryError(models.KindUnsupportedMediaType,
			"the uploaded file is not a PDF"))
		return
	}

	log.Printf("[SummarizeHandler] Received upload: file=%s, size=%d", header.Filename, header.Size)

	h.run(c, pipeline.Input{
		Mode:        pipeline.ModeUpload,
		FileData:    data,
		FileName:    header.Filename,
		FileSize:    header.Size,
		JobPosition: c.PostForm("jobPosition"),
	}, c.PostForm("applicationId"))
}

// Text summarizes raw CV text
// @Summary Summarize CV text
// @Description Generate a structured hiring summary from raw CV text
// @Tags CV
// @Accept json
// @Produce json
// @Param request body models.SummarizeTextRequest true "CV text and optional target position"
// @Success 200 {object} models.SummarizeResponse "Generated summary"
// @Failure 400 {object} models.SummarizeResponse "Missing or too-short text"
// @Failure 500 {object} models.SummarizeResponse "Summarization failed"
// @Router /cv/summarize/text [post]
func (h *SummarizeHandler) Text(c *gin.Context) {
	var req models.SummarizeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, models.NewSummaryError(models.KindInsufficientContent,
			"invalid request body; expected JSON with a 'text' field"))
		return
	}

	h.run(c, pipeline.Input{
		Mode:        pipeline.ModeText,
		Text:        req.Text,
		JobPosition: req.JobPosition,
	}, req.ApplicationID)
}

// URL summarizes a CV hosted at a URL
// @Summary Summarize a CV from a URL
// @Description Fetch a remotely hosted CV (PDF or plain text), extract its text, and generate a structured hiring summary
// @Tags CV
// @Accept json
// @Produce json
// @Param request body models.SummarizeURLRequest true "CV URL and optional target position"
// @Success 200 {object} models.SummarizeResponse "Generated summary"
// @Failure 400 {object} models.SummarizeResponse "Missing URL, unreachable host, or unreadable document"
// @Failure 403 {object} models.SummarizeResponse "Host refused access to the URL"
// @Failure 404 {object} models.SummarizeResponse "No document at the URL"
// @Failure 500 {object} models.SummarizeResponse "Summarization failed"
// @Router /cv/summarize/url [post]
func (h *SummarizeHandler) URL(c *gin.Context) {
	var req models.SummarizeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.CVURL) == "" {
		h.respondError(c, models.NewSummaryError(models.KindSourceFetch,
			"a 'cvUrl' field is required"))
		return
	}

	h.run(c, pipeline.Input{
		Mode:        pipeline.ModeURL,
		SourceURL:   strings.TrimSpace(req.CVURL),
		JobPosition: req.JobPosition,
	}, req.ApplicationID)
}

// run invokes the pipeline and writes the response envelope. applicationId is
// an opaque passthrough: echoed when supplied, never interpreted.
func (h *SummarizeHandler) run(c *gin.Context, input pipeline.Input, applicationID string) {
	result, err := h.summarizer.Summarize(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	metadata := result.Metadata
	c.JSON(http.StatusOK, models.SummarizeResponse{
		Success:       true,
		Summary:       result.Summary,
		ApplicationID: applicationID,
		Metadata:      &metadata,
	})
}

// respondError converts any pipeline failure into the envelope. Full detail is
// logged server-side; the client only ever sees the kind-specific message.
func (h *SummarizeHandler) respondError(c *gin.Context, err error) {
	var sumErr *models.SummaryError
	if !errors.As(err, &sumErr) {
		sumErr = &models.SummaryError{
			Kind:    models.KindUpstream,
			Message: "summarization failed",
			Detail:  err.Error(),
		}
	}

	log.Printf("[SummarizeHandler] Request failed: %v", sumErr)

	c.JSON(sumErr.HTTPStatus(), models.SummarizeResponse{
		Success: false,
		Error:   sumErr.Message,
	})
}

func (h *SummarizeHandler) tooLargeError() *models.SummaryError {
	return models.NewSummaryError(models.KindPayloadTooLarge,
		fmt.Sprintf("the CV file exceeds the %d MB limit", h.maxUploadBytes/(1024*1024)))
}

// isBodyTooLarge matches MaxBytesReader failures. The typed error does not
// always survive multipart parsing, so the message is checked as a fallback.
func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// isPDFUpload accepts the declared MIME type or, when browsers send a generic
// type, the .pdf extension. The magic-header check on the bytes is the final
// gate either way.
func isPDFUpload(contentType, filename string) bool {
	if strings.Contains(contentType, "application/pdf") {
		return true
	}
	if contentType == "" || strings.Contains(contentType, "application/octet-stream") {
		return strings.HasSuffix(strings.ToLower(filename), ".pdf")
	}
	return false
}
