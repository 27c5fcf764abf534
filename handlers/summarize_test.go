package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/litehr/cv-summarizer/config"
	"github.com/litehr/cv-summarizer/models"
	"github.com/litehr/cv-summarizer/pipeline"
)

type fakeGenerator struct {
	calls   int
	summary string
	err     error
}

func (f *fakeGenerator) Summarize(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

func (f *fakeGenerator) Model() string { return "test-model" }

type fakeExtractor struct {
	calls int
	text  string
	err   error
}

func (f *fakeExtractor) ExtractText(_ []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeFetcher struct {
	calls int
	data  []byte
	err   error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

type testEnv struct {
	router    *gin.Engine
	generator *fakeGenerator
	extractor *fakeExtractor
	fetcher   *fakeFetcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		generator: &fakeGenerator{summary: "structured summary"},
		extractor: &fakeExtractor{text: strings.Repeat("extracted cv text ", 60)},
		fetcher:   &fakeFetcher{},
	}

	cfg := &config.Config{MaxUploadMB: 1}
	summarizer := pipeline.NewSummarizer(env.extractor, env.fetcher, env.generator)
	handler := NewSummarizeHandler(summarizer, cfg)

	router := gin.New()
	cv := router.Group("/api/cv")
	cv.POST("/summarize/upload", handler.Upload)
	cv.POST("/summarize/text", handler.Text)
	cv.POST("/summarize/url", handler.URL)

	env.router = router
	return env
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) (*httptest.ResponseRecorder, models.SummarizeResponse) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp models.SummarizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (e *testEnv) postUpload(t *testing.T, filename string, fileData []byte, fields map[string]string) (*httptest.ResponseRecorder, models.SummarizeResponse) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("cv", filename)
	require.NoError(t, err)
	_, err = part.Write(fileData)
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/cv/summarize/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp models.SummarizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestTextModeSuccess(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.postJSON(t, "/api/cv/summarize/text", models.SummarizeTextRequest{
		Text:          strings.Repeat("go engineer ", 15),
		JobPosition:   "Backend Engineer",
		ApplicationID: "app-42",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)
	require.Equal(t, "structured summary", resp.Summary)
	require.Equal(t, "app-42", resp.ApplicationID)
	require.NotNil(t, resp.Metadata)
	require.Equal(t, "Backend Engineer", resp.Metadata.JobPosition)
	require.Equal(t, "test-model", resp.Metadata.Model)
}

func TestTextModeTooShort(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.postJSON(t, "/api/cv/summarize/text", models.SummarizeTextRequest{
		Text: "way too short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, resp.Success)
	require.Contains(t, resp.Error, "100")
	require.Equal(t, 0, env.generator.calls)
}

func TestTextModeMissingJobPosition(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.postJSON(t, "/api/cv/summarize/text", models.SummarizeTextRequest{
		Text: strings.Repeat("x", 150),
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Not specified", resp.Metadata.JobPosition)
}

func TestTextModeInvalidBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cv/summarize/text", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadSuccess(t *testing.T) {
	env := newTestEnv(t)

	fileData := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 2048)...)
	w, resp := env.postUpload(t, "cv.pdf", fileData, map[string]string{
		"jobPosition": "Backend Engineer",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)
	require.Equal(t, "cv.pdf", resp.Metadata.FileName)
	require.Equal(t, int64(len(fileData)), resp.Metadata.FileSize)
	require.Equal(t, len(strings.TrimSpace(env.extractor.text)), resp.Metadata.TextLength)
	require.Equal(t, 1, env.extractor.calls)
}

func TestUploadRejectsNonPDF(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.postUpload(t, "cv.docx", []byte("PK\x03\x04 word doc"), nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, resp.Success)
	require.Contains(t, resp.Error, "PDF")
	require.Equal(t, 0, env.extractor.calls)
	require.Equal(t, 0, env.generator.calls)
}

func TestUploadRejectsPDFExtensionWithoutMagic(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.postUpload(t, "cv.pdf", []byte("plain text pretending"), nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp.Error, "not a PDF")
	require.Equal(t, 0, env.extractor.calls)
}

func TestUploadRejectsOversizeBeforeExtraction(t *testing.T) {
	env := newTestEnv(t)

	// 2 MB against a 1 MB ceiling
	fileData := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 2*1024*1024)...)
	w, resp := env.postUpload(t, "cv.pdf", fileData, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp.Error, "1 MB")
	require.Equal(t, 0, env.extractor.calls)
	require.Equal(t, 0, env.generator.calls)
}

func TestUploadMissingFile(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("jobPosition", "Backend Engineer"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/cv/summarize/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestURLModeMissingURL(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.postJSON(t, "/api/cv/summarize/url", models.SummarizeURLRequest{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp.Error, "cvUrl")
	require.Equal(t, 0, env.fetcher.calls)
}

func TestURLModeUnreachableHost(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.err = models.NewSummaryError(models.KindSourceUnreachable,
		"could not reach the CV URL; check that it is correct and publicly accessible")

	w, resp := env.postJSON(t, "/api/cv/summarize/url", models.SummarizeURLRequest{
		CVURL: "https://no-such-host.invalid/cv.pdf",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp.Error, "could not reach")
	require.Equal(t, 0, env.generator.calls)
}

func TestURLModeNotFoundMirrored(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.err = models.NewSummaryError(models.KindSourceNotFound, "no document was found at the CV URL")

	w, _ := env.postJSON(t, "/api/cv/summarize/url", models.SummarizeURLRequest{
		CVURL: "https://files.example.com/gone.pdf",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpstreamFailuresReturn500WithDistinctMessages(t *testing.T) {
	kinds := []models.ErrorKind{
		models.KindConfiguration,
		models.KindInvalidRequest,
		models.KindPermissionDenied,
		models.KindRateLimited,
		models.KindUpstreamTimeout,
		models.KindUpstreamResponse,
		models.KindNetworkUnavailable,
	}

	messages := map[string]bool{}
	for _, kind := range kinds {
		env := newTestEnv(t)
		env.generator.err = models.NewSummaryError(kind, "failure for "+string(kind))

		w, resp := env.postJSON(t, "/api/cv/summarize/text", models.SummarizeTextRequest{
			Text: strings.Repeat("x", 150),
		})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.False(t, resp.Success)
		require.NotEmpty(t, resp.Error)
		messages[resp.Error] = true
	}

	require.Len(t, messages, len(kinds))
}

func TestErrorResponseNeverLeaksDetail(t *testing.T) {
	env := newTestEnv(t)
	env.generator.err = &models.SummaryError{
		Kind:    models.KindPermissionDenied,
		Message: "the AI service rejected the configured credentials",
		Detail:  "API key secret-key-value is invalid",
	}

	w, resp := env.postJSON(t, "/api/cv/summarize/text", models.SummarizeTextRequest{
		Text: strings.Repeat("x", 150),
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, resp.Error, "secret-key-value")
	require.NotContains(t, w.Body.String(), "secret-key-value")
}
