package composer

import (
	"fmt"
	"strconv"
	"strings"
)

type rgb struct {
	r, g, b uint8
}

var namedColors = map[string]rgb{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"orange":  {255, 165, 0},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
}

// parseColor accepts a color name, "#RRGGBB" or "0xRRGGBB"
func parseColor(s string) (rgb, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 {
		return rgb{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("unknown color %q", s)
	}
	return rgb{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v)}, nil
}

// ffmpeg returns the color in the 0xRRGGBB form lavfi sources accept
func (c rgb) ffmpeg() string {
	return fmt.Sprintf("0x%02X%02X%02X", c.r, c.g, c.b)
}

// ass returns the color as an opaque ASS &HAABBGGRR value
func (c rgb) ass() string {
	return fmt.Sprintf("&H00%02X%02X%02X", c.b, c.g, c.r)
}
