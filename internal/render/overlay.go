package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLabel draws text centered on the image, white with a black
// outline so it stays readable on any gradient. The text is scaled to
// roughly 30% of the image width. The image is modified in place.
func DrawLabel(img *image.RGBA, text string) error {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if text == "" {
		return fmt.Errorf("label text is empty")
	}

	// Render the text small first, then scale it up.
	face := basicfont.Face7x13
	baseWidth := font.MeasureString(face, text).Ceil()
	baseHeight := 13

	textImg := image.NewRGBA(image.Rect(0, 0, baseWidth, baseHeight))
	drawer := &font.Drawer{
		Dst:  textImg,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{Y: fixed.I(baseHeight)},
	}
	drawer.DrawString(text)

	targetWidth := int(float64(width) * 0.3)
	scale := float64(targetWidth) / float64(baseWidth)
	if scale < 2.0 {
		scale = 2.0
	}

	scaledWidth := int(float64(baseWidth) * scale)
	scaledHeight := int(float64(baseHeight) * scale)

	scaled := image.NewRGBA(image.Rect(0, 0, scaledWidth, scaledHeight))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), textImg, textImg.Bounds(), draw.Over, nil)

	posX := (width - scaledWidth) / 2
	posY := (height - scaledHeight) / 2

	outline := scaledHeight / 10
	if outline < 3 {
		outline = 3
	}

	// Black outline: stamp the glyph mask at every offset within a
	// circular radius.
	for dx := -outline; dx <= outline; dx++ {
		for dy := -outline; dy <= outline; dy++ {
			if dx*dx+dy*dy > outline*outline {
				continue
			}
			for sy := 0; sy < scaledHeight; sy++ {
				for sx := 0; sx < scaledWidth; sx++ {
					if _, _, _, a := scaled.At(sx, sy).RGBA(); a == 0 {
						continue
					}
					setIfInside(img, bounds, posX+sx+dx, posY+sy+dy, color.RGBA{A: 255})
				}
			}
		}
	}

	// White text on top; keep the anti-aliased edge levels.
	for sy := 0; sy < scaledHeight; sy++ {
		for sx := 0; sx < scaledWidth; sx++ {
			r, g, b, a := scaled.At(sx, sy).RGBA()
			if a == 0 {
				continue
			}
			level := uint8(((r + g + b) / 3) >> 8)
			setIfInside(img, bounds, posX+sx, posY+sy, color.RGBA{R: level, G: level, B: level, A: 255})
		}
	}

	return nil
}

func setIfInside(img *image.RGBA, bounds image.Rectangle, x, y int, c color.RGBA) {
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return
	}
	img.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y, c)
}
