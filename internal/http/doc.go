// Package http provides an HTTP client configured for fetching grammar
// assets from a CDN.
//
// The Client in this package handles:
//   - User-Agent headers so the CDN doesn't reject the requests
//   - Full-body downloads into memory
//
// # Basic Usage
//
//	client := http.NewClient("Mozilla/5.0 (compatible; TreeSitterDownloader/1.0)")
//
//	// Fetch an asset
//	body, err := client.Get(ctx, "https://unpkg.com/tree-sitter-wasms@0.1.13/out/tree-sitter-go.wasm")
package http
