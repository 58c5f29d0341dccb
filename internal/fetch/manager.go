package fetch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MalachiteN/mutsumi-assets/internal/config"
	"github.com/MalachiteN/mutsumi-assets/internal/http"
	ioutils "github.com/MalachiteN/mutsumi-assets/internal/io"
	"github.com/MalachiteN/mutsumi-assets/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelError
	LevelSuccess
)

// ProgressEvent represents a fetch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result records the outcome of one asset download.
type Result struct {
	// Asset is the descriptor the download was attempted for.
	Asset model.Asset

	// Path is the local file the asset was written to, empty on failure.
	Path string

	// Err is nil on success.
	Err error
}

// Manager coordinates the batch download of grammar assets.
//
// Each asset is fetched independently by a bounded pool of workers; one
// asset's failure never cancels or blocks its siblings. Run returns only
// after every attempt has resolved.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client

	downloaded atomic.Int32
	failed     atomic.Int32

	results []Result
	mu      sync.Mutex

	onProgress func(ProgressEvent)
}

// NewManager creates a new fetch Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		httpClient: http.NewClient(settings.UserAgent),
		onProgress: onProgress,
	}
}

// Run downloads every configured asset into the output directory.
//
// The output directory is created if it is missing. Downloads run on a
// worker pool limited to Settings.Workers; completion order across assets
// is not defined. Per-asset failures are recorded and reported through the
// progress callback but never abort the batch, so Run only returns an
// error when the output directory cannot be created.
func (m *Manager) Run(ctx context.Context) error {
	if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
		return fmt.Errorf("creating output directory %s: %w", m.settings.OutputDir, err)
	}

	assets := model.Assets(m.settings.Grammars)
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Downloading %d files from %s...", len(assets), m.settings.BaseURL),
		Level:   LevelInfo,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.Workers)

	for _, asset := range assets {
		asset := asset
		g.Go(func() error {
			m.fetchOne(ctx, asset)
			return nil // failures stay inside the worker
		})
	}

	// Workers never return errors, so Wait only blocks until the pool drains.
	g.Wait()
	return nil
}

// Progress returns the number of downloaded and failed assets so far.
func (m *Manager) Progress() (downloaded, failed int32) {
	return m.downloaded.Load(), m.failed.Load()
}

// Results returns the per-asset outcomes recorded so far. The order
// follows completion, not the configured list.
func (m *Manager) Results() []Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Result, len(m.results))
	copy(out, m.results)
	return out
}

func (m *Manager) fetchOne(ctx context.Context, asset model.Asset) {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Starting: %s...", asset.Name), Level: LevelInfo})

	path := asset.Path(m.settings.OutputDir)

	body, err := m.httpClient.Get(ctx, asset.URL(m.settings.BaseURL))
	if err == nil {
		err = ioutils.WriteFile(ctx, path, body)
	}

	if err != nil {
		m.failed.Add(1)
		m.record(Result{Asset: asset, Err: err})
		m.progress(ProgressEvent{Message: fmt.Sprintf("Failed: %s - Error: %v", asset.Name, err), Level: LevelError})
		return
	}

	m.downloaded.Add(1)
	m.record(Result{Asset: asset, Path: path})
	m.progress(ProgressEvent{Message: fmt.Sprintf("Success: %s", asset.Name), Level: LevelSuccess})
}

func (m *Manager) record(r Result) {
	m.mu.Lock()
	m.results = append(m.results, r)
	m.mu.Unlock()
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
