package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Named colours accepted wherever a hex colour is expected, matching
// the names config files have always used.
var namedColors = map[string]color.NRGBA{
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"gold":    {R: 255, G: 215, B: 0, A: 255},
	"yellow":  {R: 255, G: 255, B: 0, A: 255},
	"red":     {R: 255, G: 0, B: 0, A: 255},
	"green":   {R: 0, G: 255, B: 0, A: 255},
	"blue":    {R: 0, G: 0, B: 255, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"magenta": {R: 255, G: 0, B: 255, A: 255},
	"cyan":    {R: 0, G: 255, B: 255, A: 255},
}

// ParseColor parses "#rrggbb", "rrggbb", the short "#rgb" form, or one
// of the named colours.
func ParseColor(s string) (color.NRGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	r, g, b, err := ParseHexColor(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// ParseHexColor parses a hex colour string with or without a leading
// hash, in either the 6-digit rrggbb or 3-digit rgb form.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 6:
		var channels [3]uint8
		for i := 0; i < 3; i++ {
			v, perr := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if perr != nil {
				return 0, 0, 0, fmt.Errorf("invalid hex colour %q: %w", s, perr)
			}
			channels[i] = uint8(v)
		}
		return channels[0], channels[1], channels[2], nil

	case 3:
		var channels [3]uint8
		for i := 0; i < 3; i++ {
			// "f0a" means "ff00aa": each digit doubles.
			v, perr := strconv.ParseUint(string(hex[i])+string(hex[i]), 16, 8)
			if perr != nil {
				return 0, 0, 0, fmt.Errorf("invalid hex colour %q: %w", s, perr)
			}
			channels[i] = uint8(v)
		}
		return channels[0], channels[1], channels[2], nil

	default:
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 3 or 6 hex digits", s)
	}
}

// MustColor parses a colour and falls back to white for anything
// malformed. Rendering code uses this so a bad colour string degrades
// visibly rather than aborting the poster.
func MustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}
