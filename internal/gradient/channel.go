package gradient

import (
	"fmt"
	"strings"
)

// Channel identifies one component of an HSV color.
type Channel int

const (
	Hue Channel = iota
	Saturation
	Brightness
)

// String returns the lowercase channel name.
func (c Channel) String() string {
	switch c {
	case Saturation:
		return "saturation"
	case Brightness:
		return "brightness"
	default:
		return "hue"
	}
}

// ParseChannel parses a channel name (case-insensitive).
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(s) {
	case "hue":
		return Hue, nil
	case "saturation":
		return Saturation, nil
	case "brightness":
		return Brightness, nil
	default:
		return Hue, fmt.Errorf("invalid channel: %s (valid: hue, saturation, brightness)", s)
	}
}
