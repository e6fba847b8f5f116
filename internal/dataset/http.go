package dataset

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"time"
)

// Fetcher retrieves a dataset over HTTP with optional bearer-token
// authentication.
type Fetcher struct {
	client *http.Client
	token  string
}

// NewFetcher creates a fetcher. An empty token sends unauthenticated
// requests.
func NewFetcher(token string) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		token:  token,
	}
}

// Fetch downloads and decodes the dataset at url, choosing the decoder from
// the response content type. A 401 or 403 response yields ErrAccessDenied;
// callers must not build any items in that case.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s returned %s", ErrAccessDenied, url, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("dataset: fetch %s: unexpected status %s", url, resp.Status)
	}

	ct, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	switch ct {
	case "text/csv":
		return DecodeCSV(resp.Body)
	case "application/json":
		return DecodeJSON(resp.Body)
	case "application/yaml", "text/yaml":
		return DecodeYAML(resp.Body)
	default:
		return nil, fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, ct)
	}
}
