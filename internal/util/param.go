package util

import (
	"fmt"
	"strconv"
	"strings"
)

// RandomString is the sentinel accepted and printed for the color
// component the noise field should drive.
const RandomString = "RANDOM"

// ColorValue is one HSV component argument: either a fixed number or
// the marker that this component is the randomized one.
type ColorValue struct {
	Random bool
	Value  float32
}

// ParseColorValue parses a component argument. An empty string or the
// RANDOM sentinel (case-insensitive) selects the randomized state;
// anything else must parse as a number.
func ParseColorValue(s string) (ColorValue, error) {
	if s == "" || strings.EqualFold(s, RandomString) {
		return ColorValue{Random: true}, nil
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return ColorValue{}, fmt.Errorf("invalid color component '%s': expected a number or %s", s, RandomString)
	}

	return ColorValue{Value: float32(v)}, nil
}

// Ptr returns the fixed value as a pointer, or nil for the randomized
// state.
func (c ColorValue) Ptr() *float32 {
	if c.Random {
		return nil
	}
	v := c.Value
	return &v
}

// String renders the component the way the command line accepts it
// back.
func (c ColorValue) String() string {
	if c.Random {
		return RandomString
	}
	return strconv.FormatFloat(float64(c.Value), 'g', -1, 32)
}

// FormatFloat32 renders a float the shortest way that parses back to
// the same value.
func FormatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
