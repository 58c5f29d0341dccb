package imaging

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ErrNotFound reports that the input image path does not exist.
var ErrNotFound = errors.New("input image not found")

// Service converts pure-white pixels in an image to transparent pixels.
//
// Example usage:
//
//	svc := NewService()
//	out, err := svc.WhiteToTransparent(ctx, "sidebar-icon.png", "")
//	// out == "sidebar-icon_transparent.png"
type Service struct{}

// NewService creates a new Service.
func NewService() *Service {
	return &Service{}
}

// WhiteToTransparent reads the image at inputPath, sets the alpha channel of
// every pure-white pixel to zero, and writes the result as a PNG to
// outputPath. If outputPath is empty, the output is written next to the
// input as <basename>_transparent.png.
//
// The decoded image is normalized to a straight-alpha RGBA grid; sources
// without an alpha channel gain a fully opaque one. Non-white pixels pass
// through unchanged, including any transparency they already carry.
//
// Returns the path the output was written to.
//
// Returns an error if:
//   - inputPath does not exist (ErrNotFound); no output file is created
//   - the image cannot be decoded; no output file is created
//   - the output file cannot be written
func (s *Service) WhiteToTransparent(ctx context.Context, inputPath, outputPath string) (string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, inputPath)
		}
		return "", err
	}

	img, err := decodeNRGBA(inputPath)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	MakeWhiteTransparent(img)

	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}

	if err := encodePNG(img, outputPath); err != nil {
		return "", fmt.Errorf("encoding %s: %w", outputPath, err)
	}

	return outputPath, nil
}

// MakeWhiteTransparent sets alpha to zero for every pixel whose RGB channels
// all equal 255, regardless of the pixel's current alpha. The color channels
// are left untouched. It returns the number of pixels changed.
func MakeWhiteTransparent(img *image.NRGBA) int {
	changed := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.R == 255 && c.G == 255 && c.B == 255 {
				c.A = 0
				img.SetNRGBA(x, y, c)
				changed++
			}
		}
	}
	return changed
}

// DefaultOutputPath derives the output path for an input image:
// the input's extension is replaced with "_transparent.png", in the
// same directory.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_transparent.png"
}

// decodeNRGBA decodes any registered image format into a straight-alpha
// *image.NRGBA. Sources without an alpha channel come out fully opaque.
func decodeNRGBA(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	if img, ok := src.(*image.NRGBA); ok {
		return img, nil
	}

	img := image.NewNRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img, nil
}

// encodePNG writes img to path as a PNG file.
func encodePNG(img *image.NRGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
