package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/litehr/cv-summarizer/config"
	"github.com/litehr/cv-summarizer/models"
)

// Default generation parameters. Low temperature keeps hiring summaries
// consistent across identical CVs.
const (
	defaultTemperature     = 0.2
	defaultTopK            = 40
	defaultTopP            = 0.8
	defaultMaxOutputTokens = 4096
)

// Client calls the Gemini generateContent REST endpoint. It performs exactly
// one POST per Summarize call; failed calls surface immediately with a typed
// error and are never retried here.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	hasKey     bool
	model      string
}

// NewClient creates a new Gemini summary client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.GeminiTimeoutSeconds) * time.Second,
		},
		endpoint: strings.TrimSuffix(cfg.GeminiEndpoint, "/"),
		apiKey:   cfg.GeminiAPIKey,
		hasKey:   cfg.HasAPIKey(),
		model:    cfg.GeminiModel,
	}
}

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.model
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type upstreamErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Summarize sends the prompt to Gemini and returns the first candidate's text.
// The API key is checked before any network activity; a missing or placeholder
// key is a configuration error, never a generic upstream failure.
func (c *Client) Summarize(ctx context.Context, prompt string) (string, error) {
	if !c.hasKey {
		return "", models.NewSummaryError(models.KindConfiguration,
			"AI summarization is not configured; set GEMINI_API_KEY on the server")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     defaultTemperature,
			TopK:            defaultTopK,
			TopP:            defaultTopP,
			MaxOutputTokens: defaultMaxOutputTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return "", &models.SummaryError{
			Kind:    models.KindUpstream,
			Message: "failed to read response from the AI service",
			Detail:  err.Error(),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, body)
	}

	text, err := extractCandidateText(body)
	if err != nil {
		return "", err
	}

	log.Printf("[Gemini] Generated summary: model=%s, promptChars=%d, summaryChars=%d",
		c.model, len(prompt), len(text))

	return text, nil
}

// classifyTransportError maps client-side failures: timeouts distinctly from
// unreachable networks so the handler can word the message per cause.
func classifyTransportError(err error) *models.SummaryError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &models.SummaryError{
			Kind:    models.KindUpstreamTimeout,
			Message: "the AI service took too long to respond; try again with a shorter CV",
			Detail:  err.Error(),
		}
	}
	return &models.SummaryError{
		Kind:    models.KindNetworkUnavailable,
		Message: "could not reach the AI service",
		Detail:  err.Error(),
	}
}

// classifyStatus maps upstream HTTP status codes to error kinds. Raw upstream
// payloads go into Detail for server logs only.
func classifyStatus(status int, body []byte) *models.SummaryError {
	detail := upstreamDetail(body)

	switch status {
	case http.StatusBadRequest:
		return &models.SummaryError{
			Kind:    models.KindInvalidRequest,
			Message: "the AI service rejected the request as invalid",
			Detail:  detail,
		}
	case http.StatusForbidden:
		return &models.SummaryError{
			Kind:    models.KindPermissionDenied,
			Message: "the AI service rejected the configured credentials",
			Detail:  detail,
		}
	case http.StatusTooManyRequests:
		return &models.SummaryError{
			Kind:    models.KindRateLimited,
			Message: "the AI service rate limit was exceeded; wait a moment and try again",
			Detail:  detail,
		}
	default:
		return &models.SummaryError{
			Kind:    models.KindUpstream,
			Message: fmt.Sprintf("the AI service returned an unexpected status (%d)", status),
			Detail:  detail,
		}
	}
}

func upstreamDetail(body []byte) string {
	var parsed upstreamErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return string(body)
}

// extractCandidateText pulls the text parts of the first candidate out of the
// response envelope. Anything missing is a bad-response error rather than a
// partial string.
func extractCandidateText(body []byte) (string, error) {
	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &models.SummaryError{
			Kind:    models.KindUpstreamResponse,
			Message: "the AI service returned a malformed response",
			Detail:  err.Error(),
		}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", &models.SummaryError{
			Kind:    models.KindUpstreamResponse,
			Message: "the AI service returned no summary content",
		}
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &models.SummaryError{
			Kind:    models.KindUpstreamResponse,
			Message: "the AI service returned no summary content",
		}
	}
	return text, nil
}
