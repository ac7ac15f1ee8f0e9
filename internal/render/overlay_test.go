package render

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func uniformImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDrawLabel_RendersText(t *testing.T) {
	base := color.RGBA{R: 40, G: 90, B: 160, A: 255}
	img := uniformImage(128, 128, base)

	if err := DrawLabel(img, "Image 1/3"); err != nil {
		t.Fatalf("DrawLabel failed: %v", err)
	}

	var blacks, brights int
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			px := img.RGBAAt(x, y)
			if px == (color.RGBA{A: 255}) {
				blacks++
			}
			if px.R > 200 && px.G > 200 && px.B > 200 {
				brights++
			}
		}
	}

	if blacks == 0 {
		t.Error("no outline pixels drawn")
	}
	if brights == 0 {
		t.Error("no text pixels drawn")
	}

	t.Logf("✓ label drew %d outline and %d text pixels", blacks, brights)
}

func TestDrawLabel_CentersHorizontally(t *testing.T) {
	img := uniformImage(200, 100, color.RGBA{R: 10, G: 10, B: 10, A: 255})

	if err := DrawLabel(img, "7/9"); err != nil {
		t.Fatalf("DrawLabel failed: %v", err)
	}

	// Find the horizontal extent of modified pixels.
	left, right := 200, -1
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{R: 10, G: 10, B: 10, A: 255}) {
				if x < left {
					left = x
				}
				if x > right {
					right = x
				}
			}
		}
	}

	if right < 0 {
		t.Fatal("label did not modify the image")
	}

	leftMargin := left
	rightMargin := 200 - 1 - right
	if diff := leftMargin - rightMargin; diff < -8 || diff > 8 {
		t.Errorf("label margins are uneven: left %d, right %d", leftMargin, rightMargin)
	}

	t.Logf("✓ label centered with margins %d/%d", leftMargin, rightMargin)
}

func TestDrawLabel_ClipsOnSmallImages(t *testing.T) {
	// The minimum scale makes the label larger than the image; it
	// must clip instead of panicking.
	img := uniformImage(8, 8, color.RGBA{A: 255})

	if err := DrawLabel(img, "Image 1/100"); err != nil {
		t.Fatalf("DrawLabel failed: %v", err)
	}

	t.Logf("✓ oversized labels clip to the image")
}

func TestDrawLabel_Validation(t *testing.T) {
	tests := []struct {
		name    string
		img     *image.RGBA
		text    string
		wantErr string
	}{
		{name: "empty image", img: image.NewRGBA(image.Rect(0, 0, 0, 0)), text: "x", wantErr: "invalid dimensions"},
		{name: "empty text", img: image.NewRGBA(image.Rect(0, 0, 10, 10)), text: "", wantErr: "label text is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DrawLabel(tt.img, tt.text)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}
