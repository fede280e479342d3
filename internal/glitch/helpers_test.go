package glitch

import (
	"math/rand"
	"testing"
)

type textCall struct {
	text  string
	x, y  float64
	color RGB
}

// recordingSurface remembers every call the engine makes.
type recordingSurface struct {
	ratio      float64
	bufW, bufH int
	scale      float64
	fontSize   float64
	baseline   Baseline
	fill       RGB
	texts      []textCall
	clears     int
	vignettes  int
}

func newRecordingSurface(ratio float64) *recordingSurface {
	return &recordingSurface{ratio: ratio}
}

func (s *recordingSurface) PixelRatio() float64              { return s.ratio }
func (s *recordingSurface) SetBufferSize(w, h int)           { s.bufW, s.bufH = w, h }
func (s *recordingSurface) SetTransform(scale float64)       { s.scale = scale }
func (s *recordingSurface) SetFillColor(c RGB)               { s.fill = c }
func (s *recordingSurface) ClearRect(_, _, _, _ float64)     { s.clears++; s.texts = s.texts[:0] }
func (s *recordingSurface) Vignette(outer, center bool)      { s.vignettes++ }
func (s *recordingSurface) SetFont(size float64, b Baseline) { s.fontSize, s.baseline = size, b }

func (s *recordingSurface) FillText(text string, x, y float64) {
	s.texts = append(s.texts, textCall{text: text, x: x, y: y, color: s.fill})
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// letterGrid builds a grid whose particles are labelled A, B, C... in
// row-major order.
func letterGrid(t *testing.T, columns, rows int) *Grid {
	t.Helper()
	g := &Grid{columns: columns, rows: rows}
	for i := 0; i < columns*rows; i++ {
		c := RGB{R: i}
		g.cells = append(g.cells, NewParticle(byte('A'+i), c, c))
	}
	return g
}

func rowLetters(g *Grid, row int) string {
	b := make([]byte, g.Columns())
	for col := range b {
		b[col] = g.At(col, row).Char
	}
	return string(b)
}

func columnLetters(g *Grid, col int) string {
	b := make([]byte, g.Rows())
	for row := range b {
		b[row] = g.At(col, row).Char
	}
	return string(b)
}
