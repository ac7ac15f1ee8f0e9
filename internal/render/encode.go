// Package render writes gradient images to disk, optionally labeled,
// in single or batch runs.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Format is an on-disk image encoding.
type Format string

const (
	FormatBMP Format = "bmp"
	FormatPNG Format = "png"
)

// AllFormats lists the supported output encodings.
func AllFormats() []Format {
	return []Format{FormatBMP, FormatPNG}
}

// ParseFormat parses a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "bmp":
		return FormatBMP, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: bmp, png)", s)
	}
}

// FormatForPath picks the encoding from the path's extension. Unknown
// or missing extensions fall back to BMP.
func FormatForPath(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return FormatBMP
}

// SaveImage encodes img to path using the format implied by the
// extension and returns the number of bytes written.
func SaveImage(img image.Image, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch FormatForPath(path) {
	case FormatPNG:
		if err := png.Encode(f, img); err != nil {
			return 0, fmt.Errorf("encode png: %w", err)
		}
	default:
		if err := bmp.Encode(f, img); err != nil {
			return 0, fmt.Errorf("encode bmp: %w", err)
		}
	}

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	return info.Size(), nil
}
