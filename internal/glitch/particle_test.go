package glitch

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceTransitionTakesExactSteps(t *testing.T) {
	want := int(math.Ceil(1 / ColorStep))
	p := NewParticle('A', RGB{R: 10, G: 20, B: 30}, RGB{R: 200, G: 100, B: 0})
	require.Equal(t, 0.0, p.ColorProgress)

	calls := 0
	for p.AdvanceTransition() {
		calls++
		require.LessOrEqual(t, calls, want, "transition overran")
		assert.Equal(t, Interpolate(p.InitialColor, p.TargetColor, p.ColorProgress), p.CurrentColor)
	}
	assert.Equal(t, want, calls)
	assert.Equal(t, 1.0, p.ColorProgress)
	assert.Equal(t, p.TargetColor, p.CurrentColor)

	for i := 0; i < 3; i++ {
		assert.False(t, p.AdvanceTransition())
		assert.Equal(t, p.TargetColor, p.CurrentColor)
	}
}

func TestNewParticleWithSameColorsIsSettled(t *testing.T) {
	c := RGB{G: 99}
	p := NewParticle('Z', c, c)
	assert.Equal(t, 1.0, p.ColorProgress)
	assert.False(t, p.AdvanceTransition())
}

func TestSetTargetColorSnap(t *testing.T) {
	p := NewParticle('A', RGB{}, RGB{R: 255})
	p.AdvanceTransition()

	target := RGB{B: 77}
	p.SetTargetColor(target, false)
	assert.Equal(t, target, p.CurrentColor)
	assert.Equal(t, target, p.TargetColor)
	assert.Equal(t, 1.0, p.ColorProgress)
	assert.False(t, p.AdvanceTransition())
}

func TestSetTargetColorSmoothRestartsFromCurrent(t *testing.T) {
	p := NewParticle('A', RGB{}, RGB{R: 200})
	for i := 0; i < 10; i++ {
		p.AdvanceTransition()
	}
	midway := p.CurrentColor
	require.Equal(t, RGB{R: 100}, midway)

	p.SetTargetColor(RGB{G: 50}, true)
	assert.Equal(t, midway, p.InitialColor)
	assert.Equal(t, midway, p.CurrentColor)
	assert.Equal(t, 0.0, p.ColorProgress)

	require.True(t, p.AdvanceTransition())
	assert.Equal(t, RGB{R: 95, G: 3}, p.CurrentColor)
}

func TestRandomizeCharacterUsesCharacterSet(t *testing.T) {
	p := NewParticle('A', RGB{}, RGB{})
	rng := seeded(4)
	for i := 0; i < 200; i++ {
		p.RandomizeCharacter(rng)
		assert.True(t, strings.IndexByte(CharacterSet, p.Char) >= 0, "unexpected glyph %q", p.Char)
	}
}

func TestParticleDraw(t *testing.T) {
	s := newRecordingSurface(1)
	p := NewParticle('Q', RGB{R: 1, G: 2, B: 3}, RGB{R: 1, G: 2, B: 3})
	p.Draw(s, 12, 34)

	require.Len(t, s.texts, 1)
	assert.Equal(t, textCall{text: "Q", x: 12, y: 34, color: RGB{R: 1, G: 2, B: 3}}, s.texts[0])
}
