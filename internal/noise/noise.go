// Package noise produces dense 2-D gradient-noise fields sampled over
// pixel grids.
package noise

import "github.com/aquilax/go-perlin"

// Perlin generator parameters: alpha weights successive octaves, beta
// is the harmonic scaling factor, octaves the number of summed
// harmonics.
const (
	alpha   = 2.0
	beta    = 2.0
	octaves = 3
)

// Field samples gradient noise at every point of a width x height
// pixel grid and returns the samples in row-major order
// (index = width*y + x). The grid coordinates are multiplied by
// frequency before sampling. The same (width, height, frequency,
// seed) always produce the same field. Negative dimensions return
// nil; a zero dimension returns an empty field.
func Field(width, height int, frequency float32, seed int32) []float32 {
	if width < 0 || height < 0 {
		return nil
	}

	gen := perlin.NewPerlin(alpha, beta, octaves, int64(seed))
	freq := float64(frequency)

	samples := make([]float32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			samples[width*y+x] = float32(gen.Noise2D(float64(x)*freq, float64(y)*freq))
		}
	}

	return samples
}

// ScaledField generates Field(width, height, frequency, seed) and
// linearly remaps it so the observed extremes land exactly on min and
// max. Every returned sample lies in [min, max]. A flat field, where
// every raw sample is identical, maps to the midpoint of the range.
func ScaledField(width, height int, frequency float32, seed int32, min, max float32) []float32 {
	samples := Field(width, height, frequency, seed)
	if len(samples) == 0 {
		return samples
	}

	lo, hi := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	if lo == hi {
		mid := (min + max) / 2
		for i := range samples {
			samples[i] = mid
		}
		return samples
	}

	// Normalizing through t in [0, 1] keeps the result inside
	// [min, max] even at the extremes, where (hi-lo)/(hi-lo) is
	// exactly 1.
	span := hi - lo
	for i := range samples {
		t := (samples[i] - lo) / span
		samples[i] = min + t*(max-min)
	}

	return samples
}
