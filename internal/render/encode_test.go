package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "bmp", input: "bmp", want: FormatBMP},
		{name: "png", input: "png", want: FormatPNG},
		{name: "uppercase", input: "PNG", want: FormatPNG},
		{name: "jpeg unsupported", input: "jpeg", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				if !strings.Contains(err.Error(), "invalid format") {
					t.Errorf("error = %q, want mention of invalid format", err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "gradient.bmp", want: FormatBMP},
		{path: "gradient.png", want: FormatPNG},
		{path: "gradient.PNG", want: FormatPNG},
		{path: "gradient", want: FormatBMP},
		{path: "gradient.jpg", want: FormatBMP},
		{path: "dir.png/gradient.bmp", want: FormatBMP},
	}

	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSaveImage_BMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bmp")

	written, err := SaveImage(testImage(16, 8), path)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	if written <= 0 {
		t.Errorf("reported %d bytes written", written)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() != written {
		t.Errorf("reported %d bytes, file has %d", written, info.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	decoded, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("output is not a readable BMP: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 8 {
		t.Errorf("decoded size = %v, want 16x8", decoded.Bounds())
	}

	t.Logf("✓ wrote a decodable %d byte BMP", written)
}

func TestSaveImage_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	written, err := SaveImage(testImage(16, 8), path)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a readable PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 8 {
		t.Errorf("decoded size = %v, want 16x8", decoded.Bounds())
	}

	t.Logf("✓ wrote a decodable %d byte PNG", written)
}

func TestSaveImage_CreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.bmp")

	_, err := SaveImage(testImage(4, 4), path)
	if err == nil {
		t.Fatal("expected error for unwritable path, got none")
	}
	if !strings.Contains(err.Error(), "create") {
		t.Errorf("error = %q, want create context", err.Error())
	}
}
