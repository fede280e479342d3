package glitch

import "math"

// Renderer paints a grid onto a surface, sliding shifted rows and columns
// and wrapping them around the grid edges.
type Renderer struct {
	CellWidth  float64
	CellHeight float64

	OuterVignette  bool
	CenterVignette bool
}

// Render clears the surface and draws every particle. rowOffsets moves rows
// horizontally and colOffsets moves columns vertically, in layout pixels.
func (r *Renderer) Render(s Surface, g *Grid, size Size, rowOffsets, colOffsets map[int]float64) {
	s.ClearRect(0, 0, size.Width, size.Height)

	cols, rows := g.Columns(), g.Rows()
	totalW := float64(cols) * r.CellWidth
	totalH := float64(rows) * r.CellHeight
	if totalW <= 0 || totalH <= 0 {
		return
	}

	for row := 0; row < rows; row++ {
		rowOffset := rowOffsets[row]
		for col := 0; col < cols; col++ {
			p := g.At(col, row)
			if p == nil {
				continue
			}
			x := wrap(float64(col)*r.CellWidth+rowOffset, totalW)
			y := wrap(float64(row)*r.CellHeight+colOffsets[col], totalH)

			p.Draw(s, x, y)

			if x < r.CellWidth {
				p.Draw(s, x+totalW, y)
			}
			if x > totalW-r.CellWidth {
				p.Draw(s, x-totalW, y)
			}
			if y < r.CellHeight {
				p.Draw(s, x, y+totalH)
			}
			if y > totalH-r.CellHeight {
				p.Draw(s, x, y-totalH)
			}
		}
	}

	if o, ok := s.(Overlay); ok && (r.OuterVignette || r.CenterVignette) {
		o.Vignette(r.OuterVignette, r.CenterVignette)
	}
}

// wrap maps v into [0, total).
func wrap(v, total float64) float64 {
	v = math.Mod(v, total)
	if v < 0 {
		v += total
	}
	return math.Mod(v, total)
}
