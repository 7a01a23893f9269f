package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/klauspost/compress/gzip"
)

// Fetcher downloads the gzip-compressed feed document. No timeout is
// configured; callers own cancellation through the request context.
type Fetcher struct {
	client *http.Client
	url    string
}

// NewFetcher creates a fetcher for the given feed URL.
func NewFetcher(url string) *Fetcher {
	return &Fetcher{client: &http.Client{}, url: url}
}

// Fetch issues a GET against the feed URL and returns the decompressed
// response body. Any non-200 status is a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress feed: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress feed: %w", err)
	}
	return data, nil
}
