package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGB value. The struct carries no channel
// order of its own; the wire order depends on where the color sits. DPI
// profile colors travel as R,G,B while colors inside effect-parameter
// blocks travel as R,B,G. The two orders are never unified.
type Color struct {
	R, G, B uint8
}

// String formats the color as six lowercase hex digits, e.g. "ff4000".
func (c Color) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "rrggbb" hex, with an optional leading '#'.
func ParseColor(s string) (Color, error) {
	t := strings.TrimPrefix(s, "#")
	if len(t) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want rrggbb hex", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: want rrggbb hex", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
