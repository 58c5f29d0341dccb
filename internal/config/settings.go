package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/MalachiteN/mutsumi-assets/internal/model"
)

// Settings holds all configuration options for the grammar fetcher.
type Settings struct {
	// Download settings
	BaseURL   string `json:"base_url"`
	OutputDir string `json:"output_dir"`
	UserAgent string `json:"user_agent"`
	Workers   int    `json:"workers"`

	// Grammars is the list of files to fetch. Empty means the built-in list.
	Grammars []string `json:"grammars,omitempty"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:   "https://unpkg.com/tree-sitter-wasms@0.1.13/out/",
		OutputDir: "grammars",
		UserAgent: "Mozilla/5.0 (compatible; TreeSitterDownloader/1.0)",
		Workers:   5,
		Grammars:  model.Grammars(),
	}
}

// Load reads settings from a JSON file. A missing file is not an error;
// defaults are returned instead.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if settings.Workers < 1 {
		settings.Workers = 1
	}
	if len(settings.Grammars) == 0 {
		settings.Grammars = model.Grammars()
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
