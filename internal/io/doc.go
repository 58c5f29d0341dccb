// Package ioutils provides file system utilities for mutsumi-assets.
//
// This package contains functions for:
//   - File writing
//   - Directory creation
//
// # File Operations
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "grammars/tree-sitter-go.wasm", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("grammars")
package ioutils
