package gradient

import (
	"fmt"
	"strconv"
)

// PixelInit selects which HSV component the noise field drives and
// carries the fixed values of the other two. Build one with
// RandomizeHue, RandomizeSaturation, RandomizeBrightness or
// NewPixelInit.
type PixelInit struct {
	randomized Channel

	hue        float32
	saturation float32
	brightness float32
}

// RandomizeHue returns a PixelInit whose hue comes from the noise
// field, with fixed saturation and brightness.
func RandomizeHue(saturation, brightness float32) PixelInit {
	return PixelInit{randomized: Hue, saturation: saturation, brightness: brightness}
}

// RandomizeSaturation returns a PixelInit whose saturation comes from
// the noise field, with fixed hue and brightness.
func RandomizeSaturation(hue, brightness float32) PixelInit {
	return PixelInit{randomized: Saturation, hue: hue, brightness: brightness}
}

// RandomizeBrightness returns a PixelInit whose brightness comes from
// the noise field, with fixed hue and saturation.
func RandomizeBrightness(hue, saturation float32) PixelInit {
	return PixelInit{randomized: Brightness, hue: hue, saturation: saturation}
}

// NewPixelInit builds a PixelInit from three optional components. The
// single nil component is the one the noise field drives. Passing
// zero or more than one nil component is a caller bug and panics.
func NewPixelInit(hue, saturation, brightness *float32) PixelInit {
	switch {
	case hue == nil && saturation != nil && brightness != nil:
		return RandomizeHue(*saturation, *brightness)
	case saturation == nil && hue != nil && brightness != nil:
		return RandomizeSaturation(*hue, *brightness)
	case brightness == nil && hue != nil && saturation != nil:
		return RandomizeBrightness(*hue, *saturation)
	default:
		panic(fmt.Sprintf("pixel init: exactly one component must be randomized (hue=%s, saturation=%s, brightness=%s)",
			componentString(hue), componentString(saturation), componentString(brightness)))
	}
}

func componentString(v *float32) string {
	if v == nil {
		return "RANDOM"
	}
	return strconv.FormatFloat(float64(*v), 'g', -1, 32)
}

// Randomized returns the channel the noise field drives.
func (p PixelInit) Randomized() Channel {
	return p.randomized
}

// FixedValue returns the fixed value of the given channel. The second
// return is false for the randomized channel, which has no fixed value.
func (p PixelInit) FixedValue(c Channel) (float32, bool) {
	if c == p.randomized {
		return 0, false
	}
	switch c {
	case Saturation:
		return p.saturation, true
	case Brightness:
		return p.brightness, true
	default:
		return p.hue, true
	}
}

// ValidRange returns the closed interval noise samples must be scaled
// into for the randomized channel: [0, 359.99] for hue, [0, 1] for
// saturation and brightness.
func (p PixelInit) ValidRange() (min, max float32) {
	if p.randomized == Hue {
		return 0, 359.99
	}
	return 0, 1
}

// merge substitutes sample for the randomized channel and returns the
// complete HSV triple.
func (p PixelInit) merge(sample float32) (hue, saturation, brightness float32) {
	switch p.randomized {
	case Saturation:
		return p.hue, sample, p.brightness
	case Brightness:
		return p.hue, p.saturation, sample
	default:
		return sample, p.saturation, p.brightness
	}
}
