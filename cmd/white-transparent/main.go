package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MalachiteN/mutsumi-assets/internal/imaging"
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	outputFlag := flag.String("o", "", "Output path (defaults to <input>_transparent.png)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("white-transparent - Make pure-white pixels in an image transparent")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  white-transparent [-o output.png] <input image>")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputPath := flag.Arg(0)
	fmt.Printf("Processing: %s ...\n", inputPath)

	svc := imaging.NewService()
	outputPath, err := svc.WhiteToTransparent(context.Background(), inputPath, *outputFlag)
	if err != nil {
		if errors.Is(err, imaging.ErrNotFound) {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Error: file '%s' not found", inputPath)))
			return
		}
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Done! Output saved to: %s", outputPath)))
}
