// Package model defines the core data structures used throughout
// mutsumi-assets.
//
// # Asset
//
// Asset represents one downloadable grammar file. Both its remote URL and
// its local destination are derived from the filename:
//
//	asset := model.Asset{Name: "tree-sitter-go.wasm"}
//	fmt.Println(asset.URL(baseURL))    // Where to download from
//	fmt.Println(asset.Path(outputDir)) // Where to save it
//
// # Grammar list
//
// Grammars returns the built-in list of tree-sitter wasm grammars:
//
//	for _, asset := range model.Assets(model.Grammars()) {
//	    fmt.Println(asset.Name)
//	}
package model
