package util

import "math/rand/v2"

// RandomSeed draws a noise seed uniformly from the full int32 range,
// negatives included. Zero is excluded: it is the sentinel for "pick
// one at random", so a drawn seed of zero would be re-randomized on
// replay instead of reproducing the run.
func RandomSeed() int32 {
	for {
		if s := int32(rand.Uint32()); s != 0 {
			return s
		}
	}
}
