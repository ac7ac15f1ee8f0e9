package gradient

import "math"

// RGB is one pixel color as 8-bit red, green and blue channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// OutOfRangeError reports an HSV component outside its valid interval.
type OutOfRangeError struct {
	Component Channel
}

func (e *OutOfRangeError) Error() string {
	switch e.Component {
	case Saturation:
		return "saturation is out of range: 0 <= saturation <= 1"
	case Brightness:
		return "brightness is out of range: 0 <= brightness <= 1"
	default:
		return "hue is out of range: 0 <= hue < 360"
	}
}

// HSVToRGB converts an HSV triple to an RGB pixel.
//
// Hue must satisfy 0 <= hue < 360, saturation and brightness
// 0 <= v <= 1. Components are checked in that order and the first
// violation is returned as an *OutOfRangeError.
//
// The conversion computes chroma C = saturation*brightness, the
// intermediate X = C*(1-|((hue/60) mod 2)-1|) and the match value
// M = brightness-C, picks (r,g,b) from (C,X,0) permutations by 60
// degree hue sextant, and maps each channel to a byte as
// (v+M)*255 truncated toward zero, not rounded.
func HSVToRGB(hue, saturation, brightness float32) (RGB, error) {
	// Range checks are written so NaN fails them too.
	if !(hue >= 0 && hue < 360) {
		return RGB{}, &OutOfRangeError{Component: Hue}
	}
	if !(saturation >= 0 && saturation <= 1) {
		return RGB{}, &OutOfRangeError{Component: Saturation}
	}
	if !(brightness >= 0 && brightness <= 1) {
		return RGB{}, &OutOfRangeError{Component: Brightness}
	}

	c := saturation * brightness
	x := c * (1 - float32(math.Abs(math.Mod(float64(hue)/60, 2)-1)))
	m := brightness - c

	var r, g, b float32
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
	}, nil
}
