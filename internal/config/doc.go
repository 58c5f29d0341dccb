// Package config provides configuration management for the grammar fetcher.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get the values the tool ships with:
//
//	settings := config.DefaultSettings()
//	// Fetches the built-in grammar list from unpkg.com
//	// into ./grammars with 5 concurrent workers
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputDir = "assets/grammars"
//	err := settings.Save("/path/to/config.json")
package config
