package gradient

import (
	"fmt"
	"regexp"
	"strconv"
)

var sizePattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

// Size holds image dimensions in pixels. Zero dimensions are valid
// and produce an empty image.
type Size struct {
	Width  uint32
	Height uint32
}

// ParseSize parses a dimension string like "512x256" (width x height).
func ParseSize(s string) (Size, error) {
	matches := sizePattern.FindStringSubmatch(s)
	if matches == nil {
		return Size{}, fmt.Errorf("invalid size: '%s'. Use format like '512x256'", s)
	}

	width, err := strconv.ParseUint(matches[1], 10, 32)
	if err != nil {
		return Size{}, fmt.Errorf("invalid width '%s': must fit in 32 bits", matches[1])
	}

	height, err := strconv.ParseUint(matches[2], 10, 32)
	if err != nil {
		return Size{}, fmt.Errorf("invalid height '%s': must fit in 32 bits", matches[2])
	}

	return Size{Width: uint32(width), Height: uint32(height)}, nil
}

// Pixels returns the total number of pixels in an image of this size.
func (s Size) Pixels() int {
	return int(s.Width) * int(s.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
