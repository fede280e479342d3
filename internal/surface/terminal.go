package surface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/deepwn/glitchscreen/internal/glitch"
)

// Cell is one terminal character cell.
type Cell struct {
	Char  rune
	Color glitch.RGB
	Set   bool
}

// Terminal maps layout pixels onto a grid of character cells. Text drawn at
// a pixel position lands in the nearest cell; positions outside the buffer
// are dropped.
type Terminal struct {
	cellW, cellH float64
	background   glitch.RGB

	cols, rows int
	cells      []Cell
	fill       glitch.RGB

	outer, center bool
}

// NewTerminal returns an empty terminal surface whose cells are cellW x cellH
// layout pixels.
func NewTerminal(cellW, cellH float64, background glitch.RGB) *Terminal {
	return &Terminal{
		cellW:      cellW,
		cellH:      cellH,
		background: background,
	}
}

// LayoutSize converts a terminal size in cells to layout pixels.
func (t *Terminal) LayoutSize(cols, rows int) glitch.Size {
	return glitch.Size{Width: float64(cols) * t.cellW, Height: float64(rows) * t.cellH}
}

func (t *Terminal) PixelRatio() float64 { return 1 }

func (t *Terminal) SetBufferSize(width, height int) {
	t.cols = int(math.Round(float64(width) / t.cellW))
	t.rows = int(math.Round(float64(height) / t.cellH))
	if t.cols < 0 {
		t.cols = 0
	}
	if t.rows < 0 {
		t.rows = 0
	}
	t.cells = make([]Cell, t.cols*t.rows)
}

// SetTransform is a no-op: terminal cells have no device pixels.
func (t *Terminal) SetTransform(float64) {}

// SetFont is a no-op: the terminal picks the font.
func (t *Terminal) SetFont(float64, glitch.Baseline) {}

func (t *Terminal) SetFillColor(c glitch.RGB) { t.fill = c }

func (t *Terminal) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	col, row := t.cellAt(x, y)
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return
	}
	r, _ := firstRune(text)
	t.cells[row*t.cols+col] = Cell{Char: r, Color: t.fill, Set: true}
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return ' ', false
}

func (t *Terminal) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x/t.cellW + 0.5)), int(math.Floor(y/t.cellH + 0.5))
}

func (t *Terminal) ClearRect(x, y, width, height float64) {
	c0, r0 := t.cellAt(x, y)
	c1, r1 := t.cellAt(x+width, y+height)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, t.cols), min(r1, t.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			t.cells[row*t.cols+col] = Cell{}
		}
	}
}

// Vignette records which vignettes View applies.
func (t *Terminal) Vignette(outer, center bool) {
	t.outer, t.center = outer, center
}

func (t *Terminal) Columns() int { return t.cols }
func (t *Terminal) Rows() int    { return t.rows }

// CellAt returns the cell at (col, row).
func (t *Terminal) CellAt(col, row int) Cell {
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return Cell{}
	}
	return t.cells[row*t.cols+col]
}

// shade returns how far the cell is blended into the background by the active
// vignettes. The gradients mirror the raster ones: the outer vignette ramps
// from 60% to 100% of the corner distance, the centre one fades out by 60%.
func (t *Terminal) shade(col, row int) float64 {
	if !t.outer && !t.center {
		return 0
	}
	w, h := float64(t.cols)*t.cellW, float64(t.rows)*t.cellH
	radius := math.Hypot(w/2, h/2)
	if radius == 0 {
		return 0
	}
	x := float64(col)*t.cellW + t.cellW/2
	y := float64(row)*t.cellH + t.cellH/2
	d := math.Hypot(x-w/2, y-h/2) / radius

	var a float64
	if t.outer && d > 0.6 {
		a = math.Min((d-0.6)/0.4, 1)
	}
	if t.center && d < 0.6 {
		c := 0.8 * (1 - d/0.6)
		a = a + c - a*c
	}
	return a
}

func (t *Terminal) shaded(c glitch.RGB, amount float64) glitch.RGB {
	if amount <= 0 {
		return c
	}
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	bg := colorful.Color{R: float64(t.background.R) / 255, G: float64(t.background.G) / 255, B: float64(t.background.B) / 255}
	r, g, b := src.BlendRgb(bg, amount).Clamped().RGB255()
	return glitch.RGB{R: int(r), G: int(g), B: int(b)}
}

// View renders the cells as coloured terminal lines, one style per run of
// equally coloured cells.
func (t *Terminal) View() string {
	bg := lipgloss.Color(t.background.Hex())
	blank := lipgloss.NewStyle().Background(bg)

	var sb strings.Builder
	for row := 0; row < t.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		var (
			run     strings.Builder
			runSet  bool
			runHex  string
			started bool
		)
		flush := func() {
			if !started {
				return
			}
			if runSet {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runHex)).Background(bg).Render(run.String()))
			} else {
				sb.WriteString(blank.Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < t.cols; col++ {
			cell := t.cells[row*t.cols+col]
			hex := ""
			ch := ' '
			if cell.Set {
				hex = t.shaded(cell.Color, t.shade(col, row)).Hex()
				ch = cell.Char
			}
			if started && (cell.Set != runSet || hex != runHex) {
				flush()
			}
			runSet, runHex, started = cell.Set, hex, true
			run.WriteRune(ch)
		}
		flush()
	}
	return sb.String()
}

// PlainText returns the cells as uncoloured lines.
func (t *Terminal) PlainText() string {
	var sb strings.Builder
	for row := 0; row < t.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < t.cols; col++ {
			cell := t.cells[row*t.cols+col]
			if cell.Set {
				sb.WriteRune(cell.Char)
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
