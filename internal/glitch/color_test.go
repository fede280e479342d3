package glitch

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGBMatchesPairParsing(t *testing.T) {
	rng := seeded(1)
	for i := 0; i < 500; i++ {
		v := rng.Intn(1 << 24)
		hex := fmt.Sprintf("#%06x", v)
		if i%2 == 0 {
			hex = fmt.Sprintf("#%06X", v)
		}

		got, ok := HexToRGB(hex)
		require.True(t, ok, hex)

		r, _ := strconv.ParseUint(hex[1:3], 16, 8)
		g, _ := strconv.ParseUint(hex[3:5], 16, 8)
		b, _ := strconv.ParseUint(hex[5:7], 16, 8)
		assert.Equal(t, RGB{R: int(r), G: int(g), B: int(b)}, got, hex)
	}
}

func TestHexToRGBShortForm(t *testing.T) {
	short, ok := HexToRGB("#abc")
	require.True(t, ok)
	long, ok := HexToRGB("#aabbcc")
	require.True(t, ok)
	assert.Equal(t, long, short)
	assert.Equal(t, RGB{R: 0xaa, G: 0xbb, B: 0xcc}, short)
}

func TestHexToRGBRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "#12", "#1234", "#12345", "#1234567", "aabbcc", "#ggg", "#12345z", "##abcd"} {
		t.Run(in, func(t *testing.T) {
			_, ok := HexToRGB(in)
			assert.False(t, ok)
		})
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	rng := seeded(2)
	for i := 0; i < 200; i++ {
		start := RGB{R: rng.Intn(256), G: rng.Intn(256), B: rng.Intn(256)}
		end := RGB{R: rng.Intn(256), G: rng.Intn(256), B: rng.Intn(256)}
		assert.Equal(t, start, Interpolate(start, end, 0))
		assert.Equal(t, end, Interpolate(start, end, 1))
	}
}

func TestInterpolateRoundsHalfUp(t *testing.T) {
	got := Interpolate(RGB{}, RGB{R: 255, G: 1, B: 3}, 0.5)
	assert.Equal(t, RGB{R: 128, G: 1, B: 2}, got)
}

func TestRandomColorStaysInPalette(t *testing.T) {
	palette := []RGB{{R: 1}, {G: 2}, {B: 3}}
	seen := map[RGB]bool{}
	rng := seeded(3)
	for i := 0; i < 300; i++ {
		c := RandomColor(rng, palette)
		assert.Contains(t, palette, c)
		seen[c] = true
	}
	assert.Len(t, seen, len(palette))
}

func TestParsePalette(t *testing.T) {
	palette, rejected := ParsePalette([]string{"#fff", "nope", "#000000", "#12"})
	assert.Equal(t, []RGB{{R: 255, G: 255, B: 255}, {}}, palette)
	assert.Equal(t, []string{"nope", "#12"}, rejected)
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#61dca3", RGB{R: 0x61, G: 0xdc, B: 0xa3}.Hex())
	assert.Equal(t, "#ff0000", RGB{R: 300, G: -4}.Hex())
}
