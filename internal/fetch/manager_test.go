package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/MalachiteN/mutsumi-assets/internal/config"
)

func testSettings(t *testing.T, baseURL string, grammars []string) *config.Settings {
	t.Helper()
	s := config.DefaultSettings()
	s.BaseURL = baseURL
	s.OutputDir = filepath.Join(t.TempDir(), "grammars")
	s.Grammars = grammars
	return s
}

func TestManager_Run(t *testing.T) {
	var mu sync.Mutex
	requested := make(map[string]int)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requested[r.URL.Path]++
		mu.Unlock()
		w.Write([]byte("content of " + r.URL.Path))
	}))
	defer server.Close()

	grammars := []string{"a.wasm", "b.wasm", "c.wasm"}
	settings := testSettings(t, server.URL+"/", grammars)

	manager := NewManager(settings, nil)
	if err := manager.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Exactly one attempt per configured file.
	for _, name := range grammars {
		if n := requested["/"+name]; n != 1 {
			t.Errorf("%s requested %d times, want 1", name, n)
		}
	}

	// Every file written to disk with the fetched body.
	for _, name := range grammars {
		data, err := os.ReadFile(filepath.Join(settings.OutputDir, name))
		if err != nil {
			t.Errorf("reading %s: %v", name, err)
			continue
		}
		if want := "content of /" + name; string(data) != want {
			t.Errorf("%s content = %q, want %q", name, data, want)
		}
	}

	downloaded, failed := manager.Progress()
	if downloaded != 3 || failed != 0 {
		t.Errorf("Progress() = (%d, %d), want (3, 0)", downloaded, failed)
	}
	if got := len(manager.Results()); got != 3 {
		t.Errorf("len(Results()) = %d, want 3", got)
	}
}

func TestManager_FailureIsolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "broken") {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	grammars := []string{"good1.wasm", "broken.wasm", "good2.wasm"}
	settings := testSettings(t, server.URL+"/", grammars)

	var events []ProgressEvent
	var mu sync.Mutex
	manager := NewManager(settings, func(e ProgressEvent) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})

	if err := manager.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v, per-file failures must not fail the batch", err)
	}

	// The good files made it to disk; the broken one did not.
	for _, name := range []string{"good1.wasm", "good2.wasm"} {
		if _, err := os.Stat(filepath.Join(settings.OutputDir, name)); err != nil {
			t.Errorf("%s should have been written: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(settings.OutputDir, "broken.wasm")); err == nil {
		t.Error("broken.wasm should not have been written")
	}

	downloaded, failed := manager.Progress()
	if downloaded != 2 || failed != 1 {
		t.Errorf("Progress() = (%d, %d), want (2, 1)", downloaded, failed)
	}

	// Every attempt resolved, success or not.
	if got := len(manager.Results()); got != 3 {
		t.Errorf("len(Results()) = %d, want 3", got)
	}
	var failures int
	for _, r := range manager.Results() {
		if r.Err != nil {
			failures++
			if r.Asset.Name != "broken.wasm" {
				t.Errorf("unexpected failure for %s: %v", r.Asset.Name, r.Err)
			}
		}
	}
	if failures != 1 {
		t.Errorf("failures = %d, want 1", failures)
	}

	mu.Lock()
	defer mu.Unlock()
	var errorEvents int
	for _, e := range events {
		if e.Level == LevelError {
			errorEvents++
		}
	}
	if errorEvents != 1 {
		t.Errorf("error events = %d, want 1", errorEvents)
	}
}

func TestManager_CreatesOutputDir(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	settings := testSettings(t, server.URL+"/", []string{"a.wasm"})
	settings.OutputDir = filepath.Join(t.TempDir(), "nested", "grammars")

	manager := NewManager(settings, nil)
	if err := manager.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(settings.OutputDir, "a.wasm")); err != nil {
		t.Errorf("asset not written into created directory: %v", err)
	}

	// A second run against the existing directory must not fail.
	if err := manager.Run(context.Background()); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
}

func TestManager_OverwritesExistingFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fresh"))
	}))
	defer server.Close()

	settings := testSettings(t, server.URL+"/", []string{"a.wasm"})
	if err := os.MkdirAll(settings.OutputDir, 0755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(settings.OutputDir, "a.wasm")
	if err := os.WriteFile(stale, []byte("stale previous content"), 0644); err != nil {
		t.Fatal(err)
	}

	manager := NewManager(settings, nil)
	if err := manager.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fresh" {
		t.Errorf("file content = %q, want overwritten with %q", data, "fresh")
	}
}

func TestManager_BoundedWorkers(t *testing.T) {
	var mu sync.Mutex
	active, peak := 0, 0

	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		active++
		if active > peak {
			peak = active
		}
		mu.Unlock()

		<-block

		mu.Lock()
		active--
		mu.Unlock()
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	grammars := make([]string, 8)
	for i := range grammars {
		grammars[i] = string(rune('a'+i)) + ".wasm"
	}
	settings := testSettings(t, server.URL+"/", grammars)
	settings.Workers = 2

	manager := NewManager(settings, nil)

	done := make(chan struct{})
	go func() {
		manager.Run(context.Background())
		close(done)
	}()

	// Let the pool saturate, then release all requests.
	for i := 0; i < len(grammars); i++ {
		block <- struct{}{}
	}
	<-done

	if peak > 2 {
		t.Errorf("peak concurrent requests = %d, want at most 2", peak)
	}
	downloaded, _ := manager.Progress()
	if int(downloaded) != len(grammars) {
		t.Errorf("downloaded = %d, want %d", downloaded, len(grammars))
	}
}
