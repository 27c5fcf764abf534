package fetcher

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/litehr/cv-summarizer/config"
	"github.com/litehr/cv-summarizer/models"
	"github.com/litehr/cv-summarizer/utils"
)

// Fetcher downloads CV documents from operator-supplied URLs (url-mode
// ingestion). Some file hosts block default client signatures, so requests
// carry browser-like headers.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewFetcher creates a fetcher honoring the configured timeout and the same
// size ceiling that applies to direct uploads
func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client:   utils.NewHTTPClient(time.Duration(cfg.FetchTimeoutSeconds) * time.Second),
		maxBytes: cfg.MaxUploadBytes(),
	}
}

// Fetch downloads the document at the given URL. Failures come back as typed
// errors so the response can mirror the cause: 404 and 403 from the host are
// distinguished from unreachable hosts and other statuses.
func (f *Fetcher) Fetch(ctx context.Context, sourceURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, &models.SummaryError{
			Kind:    models.KindSourceFetch,
			Message: "the CV URL is not a valid URL",
			Detail:  err.Error(),
		}
	}

	// Mimic a browser; several CV hosts reject bare Go clients
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/pdf,text/plain,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("[Fetcher] Fetch failed for %s: %v", sourceURL, err)
		return nil, &models.SummaryError{
			Kind:    models.KindSourceUnreachable,
			Message: "could not reach the CV URL; check that it is correct and publicly accessible",
			Detail:  err.Error(),
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, models.NewSummaryError(models.KindSourceNotFound,
			"no document was found at the CV URL")
	case resp.StatusCode == http.StatusForbidden:
		return nil, models.NewSummaryError(models.KindSourceForbidden,
			"the host refused access to the CV URL")
	case resp.StatusCode != http.StatusOK:
		return nil, &models.SummaryError{
			Kind:    models.KindSourceFetch,
			Message: "the CV URL did not return a document",
			Detail:  fmt.Sprintf("host returned status %d", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, &models.SummaryError{
			Kind:    models.KindSourceFetch,
			Message: "failed to download the document from the CV URL",
			Detail:  err.Error(),
		}
	}

	if int64(len(data)) > f.maxBytes {
		return nil, &models.SummaryError{
			Kind:    models.KindPayloadTooLarge,
			Message: fmt.Sprintf("the document at the CV URL exceeds the %d MB limit", f.maxBytes/(1024*1024)),
		}
	}

	if len(data) == 0 {
		return nil, models.NewSummaryError(models.KindEmptySource,
			"the CV URL returned an empty document")
	}

	log.Printf("[Fetcher] Fetched %d bytes from %s", len(data), sourceURL)
	return data, nil
}
