package glitch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridSize(t *testing.T) {
	palette := []RGB{{R: 1}, {G: 1}}
	tests := []struct {
		name         string
		w, h, cw, ch float64
	}{
		{"exact", 100, 200, 10, 20},
		{"partial cells", 101, 201, 10, 20},
		{"smaller than a cell", 3, 4, 10, 20},
		{"fractional", 99.5, 40.1, 10, 20},
		{"wide", 1920, 1080, 10, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.w, tc.h, tc.cw, tc.ch, palette, seeded(5))
			cols := int(math.Ceil(tc.w / tc.cw))
			rows := int(math.Ceil(tc.h / tc.ch))
			assert.Equal(t, cols, g.Columns())
			assert.Equal(t, rows, g.Rows())
			assert.Equal(t, cols*rows, g.Len())
			for _, p := range g.Particles() {
				require.NotNil(t, p)
				assert.Contains(t, palette, p.InitialColor)
				assert.Contains(t, palette, p.TargetColor)
			}
		})
	}
}

func TestNewGridEmpty(t *testing.T) {
	assert.Equal(t, 0, NewGrid(0, 100, 10, 20, []RGB{{}}, seeded(1)).Len())
	assert.Equal(t, 0, NewGrid(100, 100, 10, 20, nil, seeded(1)).Len())
}

func TestGridIndexMapping(t *testing.T) {
	g := letterGrid(t, 4, 3)
	for i, p := range g.Particles() {
		assert.Same(t, p, g.At(i%4, i/4))
	}
	assert.Nil(t, g.At(4, 0))
	assert.Nil(t, g.At(0, -1))
}

func TestRotateRow(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		steps     int
		want      string
	}{
		{"forward one", 1, 1, "DABC"},
		{"backward one", -1, 1, "BCDA"},
		{"full turn is identity", 1, 4, "ABCD"},
		{"more than a turn", 1, 6, "CDAB"},
		{"backward more than a turn", -1, 5, "BCDA"},
		{"zero steps", 1, 0, "ABCD"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := letterGrid(t, 4, 2)
			g.RotateRow(0, tc.direction, tc.steps)
			assert.Equal(t, tc.want, rowLetters(g, 0))
			assert.Equal(t, "EFGH", rowLetters(g, 1), "other rows untouched")
		})
	}
}

func TestRotateColumn(t *testing.T) {
	g := letterGrid(t, 2, 4)
	require.Equal(t, "ACEG", columnLetters(g, 0))

	g.RotateColumn(0, 1, 1)
	assert.Equal(t, "GACE", columnLetters(g, 0))
	assert.Equal(t, "BDFH", columnLetters(g, 1))

	g.RotateColumn(0, -1, 2)
	assert.Equal(t, "CEGA", columnLetters(g, 0))

	g.RotateColumn(1, -1, 4)
	assert.Equal(t, "BDFH", columnLetters(g, 1))
}

func TestRotateKeepsEveryParticle(t *testing.T) {
	g := letterGrid(t, 5, 5)
	before := map[*Particle]bool{}
	for _, p := range g.Particles() {
		before[p] = true
	}
	g.RotateRow(2, 1, 3)
	g.RotateColumn(4, -1, 7)
	g.RotateRow(9, 1, 1)

	after := map[*Particle]bool{}
	for _, p := range g.Particles() {
		after[p] = true
	}
	assert.Equal(t, before, after)
}
