package glitch

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel colour. Channels are plain ints so that
// Interpolate with t outside [0,1] does not wrap.
type RGB struct {
	R, G, B int
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// Color converts to an opaque color.RGBA for raster drawing.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B), A: 0xff}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// HexToRGB parses "#RGB" or "#RRGGBB". Any other shape is rejected.
func HexToRGB(hex string) (RGB, bool) {
	if len(hex) == 0 || hex[0] != '#' {
		return RGB{}, false
	}
	digits := hex[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return RGB{}, false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return RGB{}, false
		}
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Interpolate blends start towards end by t per channel, rounding half up.
// t is not clamped.
func Interpolate(start, end RGB, t float64) RGB {
	return RGB{
		R: lerpChannel(start.R, end.R, t),
		G: lerpChannel(start.G, end.G, t),
		B: lerpChannel(start.B, end.B, t),
	}
}

func lerpChannel(a, b int, t float64) int {
	return int(math.Floor(float64(a) + float64(b-a)*t + 0.5))
}

// RandomColor picks a palette entry uniformly. The palette must not be empty.
func RandomColor(rng *rand.Rand, palette []RGB) RGB {
	return palette[rng.Intn(len(palette))]
}

// ParsePalette parses hex colours, returning the valid ones in order and the
// entries that were dropped.
func ParsePalette(hexes []string) (palette []RGB, rejected []string) {
	palette = make([]RGB, 0, len(hexes))
	for _, h := range hexes {
		c, ok := HexToRGB(h)
		if !ok {
			rejected = append(rejected, h)
			continue
		}
		palette = append(palette, c)
	}
	return palette, rejected
}
