package model

import (
	"path/filepath"
	"strings"
)

// Asset describes one downloadable grammar file.
//
// An Asset is just a filename; the remote URL and the local destination
// are both derived from it:
//
//	a := model.Asset{Name: "tree-sitter-go.wasm"}
//	a.URL("https://unpkg.com/tree-sitter-wasms@0.1.13/out/")
//	// "https://unpkg.com/tree-sitter-wasms@0.1.13/out/tree-sitter-go.wasm"
//	a.Path("grammars")
//	// "grammars/tree-sitter-go.wasm"
type Asset struct {
	// Name is the remote filename, kept as-is for the local file.
	Name string
}

// URL returns the download URL for this asset under the given base URL.
// A missing trailing slash on base is tolerated.
func (a Asset) URL(base string) string {
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + a.Name
}

// Path returns the local file path for this asset inside dir.
func (a Asset) Path(dir string) string {
	return filepath.Join(dir, a.Name)
}

// Assets wraps a list of filenames into Asset values.
func Assets(names []string) []Asset {
	assets := make([]Asset, len(names))
	for i, name := range names {
		assets[i] = Asset{Name: name}
	}
	return assets
}
