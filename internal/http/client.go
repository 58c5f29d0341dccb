package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Client wraps HTTP operations for fetching grammar assets.
//
// Client provides:
//   - A fixed User-Agent header so the CDN doesn't reject the requests
//   - Full-body downloads into memory
//
// No request timeout is applied: a stalled download holds on to its worker
// slot until the surrounding context is cancelled.
//
// Example usage:
//
//	client := NewClient("Mozilla/5.0 (compatible; TreeSitterDownloader/1.0)")
//	body, err := client.Get(ctx, baseURL+"tree-sitter-go.wasm")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client that sends the given User-Agent
// header on every request.
func NewClient(userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{},
		userAgent:  userAgent,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
//
// Non-200 responses are rejected rather than passed through so that a CDN
// error page is never written to disk as if it were an asset.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
