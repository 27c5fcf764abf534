package models

import "time"

// SummarizeTextRequest represents a text-mode summarization request
// @Description CV summarization request carrying raw CV text
type SummarizeTextRequest struct {
	Text          string `json:"text" example:"John Doe\nBackend Engineer\n8 years building distributed systems in Go..."`
	JobPosition   string `json:"jobPosition,omitempty" example:"Backend Engineer"`
	ApplicationID string `json:"applicationId,omitempty" example:"app-7f3c2a"`
}

// SummarizeURLRequest represents a url-mode summarization request
// @Description CV summarization request pointing at a remotely hosted PDF
type SummarizeURLRequest struct {
	CVURL         string `json:"cvUrl" example:"https://files.example.com/cv/jdoe.pdf"`
	JobPosition   string `json:"jobPosition,omitempty" example:"Backend Engineer"`
	ApplicationID string `json:"applicationId,omitempty" example:"app-7f3c2a"`
}

// SummaryMetadata describes the generated summary
// @Description Metadata about the source document and the generation run
type SummaryMetadata struct {
	FileName    string    `json:"fileName,omitempty" example:"jdoe_cv.pdf"`
	FileSize    int64     `json:"fileSize,omitempty" example:"51200"`
	TextLength  int       `json:"textLength" example:"4230"`
	JobPosition string    `json:"jobPosition" example:"Backend Engineer"`
	GeneratedAt time.Time `json:"generatedAt" example:"2024-11-02T10:30:00Z"`
	Model       string    `json:"model" example:"gemini-2.5-flash"`
}

// SummarizeResponse is the envelope returned by every summarization endpoint
// @Description Standard response envelope; error is set only when success is false
type SummarizeResponse struct {
	Success       bool             `json:"success"`
	Summary       string           `json:"summary,omitempty"`
	Error         string           `json:"error,omitempty" example:"CV text must contain at least 100 characters"`
	ApplicationID string           `json:"applicationId,omitempty"`
	Metadata      *SummaryMetadata `json:"metadata,omitempty"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-11-02T10:30:00Z"`
}
