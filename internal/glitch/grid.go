package glitch

import (
	"math"
	"math/rand"
)

// Grid is the row-major matrix of particles covering the surface.
type Grid struct {
	columns int
	rows    int
	cells   []*Particle
}

// NewGrid sizes a grid to cover widthPx x heightPx with cells of
// cellW x cellH and fills it with random particles.
func NewGrid(widthPx, heightPx, cellW, cellH float64, palette []RGB, rng *rand.Rand) *Grid {
	columns := cellCount(widthPx, cellW)
	rows := cellCount(heightPx, cellH)
	g := &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]*Particle, 0, columns*rows),
	}
	if len(palette) == 0 {
		g.columns, g.rows = 0, 0
		return g
	}
	for i := 0; i < columns*rows; i++ {
		g.cells = append(g.cells, NewParticle(
			randomCharacter(rng),
			RandomColor(rng, palette),
			RandomColor(rng, palette),
		))
	}
	return g
}

func cellCount(px, cell float64) int {
	if px <= 0 || cell <= 0 {
		return 0
	}
	return int(math.Ceil(px / cell))
}

func (g *Grid) Columns() int { return g.columns }
func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Len() int     { return len(g.cells) }

// Particles exposes the cells in render order.
func (g *Grid) Particles() []*Particle { return g.cells }

// At returns the particle at (col, row), or nil when out of range.
func (g *Grid) At(col, row int) *Particle {
	if col < 0 || col >= g.columns || row < 0 || row >= g.rows {
		return nil
	}
	return g.cells[row*g.columns+col]
}

// RotateRow circularly shifts a row. Direction +1 moves content towards
// higher column indices.
func (g *Grid) RotateRow(row, direction, steps int) {
	if row < 0 || row >= g.rows || g.columns == 0 {
		return
	}
	start := row * g.columns
	line := g.cells[start : start+g.columns]
	rotateInto(line, line, direction*steps)
}

// RotateColumn circularly shifts a column. Direction +1 moves content towards
// higher row indices.
func (g *Grid) RotateColumn(col, direction, steps int) {
	if col < 0 || col >= g.columns || g.rows == 0 {
		return
	}
	column := make([]*Particle, g.rows)
	for r := 0; r < g.rows; r++ {
		column[r] = g.cells[r*g.columns+col]
	}
	rotateInto(column, column, direction*steps)
	for r := 0; r < g.rows; r++ {
		g.cells[r*g.columns+col] = column[r]
	}
}

// rotateInto writes src rotated by shift into dst. dst may alias src; the
// rotated sequence is built in full before it is copied back.
func rotateInto(dst, src []*Particle, shift int) {
	n := len(src)
	if n == 0 {
		return
	}
	shift %= n
	rotated := make([]*Particle, n)
	for i, p := range src {
		pos := (i + shift) % n
		if pos < 0 {
			pos += n
		}
		rotated[pos] = p
	}
	copy(dst, rotated)
}
