package models

import "net/http"

// ErrorKind is the closed set of failure categories the pipeline can produce.
// Handlers branch on kinds, never on raw upstream payloads.
type ErrorKind string

const (
	// Boundary validation
	KindUnsupportedMediaType ErrorKind = "unsupported_media_type"
	KindPayloadTooLarge      ErrorKind = "payload_too_large"
	KindUploadRead           ErrorKind = "upload_read_failed"
	KindInsufficientContent  ErrorKind = "insufficient_content"

	// Document extraction
	KindExtraction ErrorKind = "extraction_failed"

	// URL-mode source fetch
	KindEmptySource       ErrorKind = "empty_source"
	KindSourceNotFound    ErrorKind = "source_not_found"
	KindSourceForbidden   ErrorKind = "source_forbidden"
	KindSourceUnreachable ErrorKind = "source_unreachable"
	KindSourceFetch       ErrorKind = "source_fetch_failed"

	// Summary client
	KindConfiguration      ErrorKind = "configuration_error"
	KindInvalidRequest     ErrorKind = "upstream_invalid_request"
	KindPermissionDenied   ErrorKind = "upstream_permission_denied"
	KindRateLimited        ErrorKind = "upstream_rate_limited"
	KindUpstreamTimeout    ErrorKind = "upstream_timeout"
	KindUpstreamResponse   ErrorKind = "upstream_bad_response"
	KindNetworkUnavailable ErrorKind = "network_unavailable"
	KindUpstream           ErrorKind = "upstream_error"
)

// SummaryError carries a kind, a user-facing message, and server-side detail.
// Message is safe to return to clients; Detail is log-only and may contain
// upstream payload fragments.
type SummaryError struct {
	Kind    ErrorKind
	Message string
	Detail  string
}

func (e *SummaryError) Error() string {
	if e.Detail != "" {
		return string(e.Kind) + ": " + e.Message + " (" + e.Detail + ")"
	}
	return string(e.Kind) + ": " + e.Message
}

// NewSummaryError creates an error with no server-side detail
func NewSummaryError(kind ErrorKind, message string) *SummaryError {
	return &SummaryError{Kind: kind, Message: message}
}

// HTTPStatus maps an error kind to the response status code. Fetch failures
// mirror the fetch attempt; configuration and upstream failures are 500 since
// the client cannot recover by retrying the same request.
func (e *SummaryError) HTTPStatus() int {
	switch e.Kind {
	case KindUnsupportedMediaType, KindPayloadTooLarge, KindUploadRead,
		KindInsufficientContent, KindExtraction, KindEmptySource,
		KindSourceUnreachable, KindSourceFetch:
		return http.StatusBadRequest
	case KindSourceNotFound:
		return http.StatusNotFound
	case KindSourceForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
