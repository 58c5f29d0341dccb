package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MalachiteN/mutsumi-assets/internal/config"
	"github.com/MalachiteN/mutsumi-assets/internal/fetch"
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	// Command line flags
	var (
		baseURLFlag = flag.String("base-url", "", "Base URL to download from (overrides config)")
		outFlag     = flag.String("out", "", "Output directory (overrides config)")
		workersFlag = flag.Int("workers", 0, "Number of concurrent downloads (overrides config)")
		configFlag  = flag.String("config", "", "Path to config file")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *baseURLFlag != "" {
		settings.BaseURL = *baseURLFlag
	}
	if *outFlag != "" {
		settings.OutputDir = *outFlag
	}
	if *workersFlag > 0 {
		settings.Workers = *workersFlag
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := fetch.NewManager(settings, func(event fetch.ProgressEvent) {
		switch event.Level {
		case fetch.LevelError:
			fmt.Println(errorStyle.Render("❌ " + event.Message))
		case fetch.LevelSuccess:
			fmt.Println(successStyle.Render("✅ " + event.Message))
		default:
			fmt.Println(event.Message)
		}
	})

	if err := manager.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Individual failures are already reported per file; the batch itself
	// always completes.
	downloaded, failed := manager.Progress()
	fmt.Println()
	fmt.Println("All tasks completed.")
	fmt.Printf("Downloaded %d files, %d failed.\n", downloaded, failed)
}
