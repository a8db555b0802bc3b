package prefs

import (
	"fmt"
	"strconv"
	"strings"
)

// Type tags prefixing every raw value in the preferences file.
const (
	TagBoolean = "B"
	TagInteger = "I"
	TagColor   = "C"
)

const maxPackedColor = 0xFFFFFF

// Color is an RGB color with one byte per channel.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// UnpackColor decodes a packed RGB integer, one byte per channel, red in the
// most significant byte.
func UnpackColor(v int64) Color {
	return Color{
		R: uint8((v >> 16) & 0xFF),
		G: uint8((v >> 8) & 0xFF),
		B: uint8(v & 0xFF),
	}
}

// Packed returns the color re-encoded as a packed RGB integer.
func (c Color) Packed() int64 {
	return int64(c.R)<<16 | int64(c.G)<<8 | int64(c.B)
}

// String renders the color as a hex triplet.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// parseBooleanValue accepts exactly "Btrue" or "Bfalse", case-insensitively.
func parseBooleanValue(raw string) (bool, error) {
	switch {
	case strings.EqualFold(raw, TagBoolean+"true"):
		return true, nil
	case strings.EqualFold(raw, TagBoolean+"false"):
		return false, nil
	default:
		return false, fmt.Errorf("boolean value must be %strue or %sfalse, got %q", TagBoolean, TagBoolean, raw)
	}
}

// parseIntegerValue accepts an "I"-tagged base-10 integer.
func parseIntegerValue(raw string) (int64, error) {
	rest, ok := strings.CutPrefix(raw, TagInteger)
	if !ok {
		return 0, fmt.Errorf("integer value must start with %s, got %q", TagInteger, raw)
	}
	v, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("integer value %q is not a base-10 integer", raw)
	}
	return v, nil
}

// parseColorValue accepts a "C"-tagged packed RGB integer.
func parseColorValue(raw string) (Color, error) {
	rest, ok := strings.CutPrefix(raw, TagColor)
	if !ok {
		return Color{}, fmt.Errorf("color value must start with %s, got %q", TagColor, raw)
	}
	v, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return Color{}, fmt.Errorf("color value %q is not a packed integer", raw)
	}
	if v < 0 || v > maxPackedColor {
		return Color{}, fmt.Errorf("packed color %d is outside the RGB range", v)
	}
	return UnpackColor(v), nil
}
