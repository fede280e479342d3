package glitch

import (
	"math"
	"math/rand"
	"time"
)

// Stats summarizes engine activity.
type Stats struct {
	Columns int
	Rows    int
	Ticks   int
	Redraws int
	Batches int
}

// Engine owns the grid and advances it one tick at a time. Tick and every
// accessor must run on one goroutine; Resize may be called from any.
type Engine struct {
	opts     Options
	palette  []RGB
	surface  Surface
	renderer *Renderer
	shifts   *ShiftScheduler
	rng      *rand.Rand

	resizes chan Size
	grid    *Grid
	size    Size

	lastMutation time.Duration
	ticks        int
	redraws      int
}

// NewEngine creates an engine drawing into surface. A nil rng seeds one from
// the clock. The grid stays empty until the first Resize.
func NewEngine(surface Surface, opts Options, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	opts, _ = opts.Normalize()
	return &Engine{
		opts:    opts,
		palette: opts.Palette(),
		surface: surface,
		renderer: &Renderer{
			CellWidth:      CellWidth,
			CellHeight:     CellHeight,
			OuterVignette:  opts.OuterVignette,
			CenterVignette: opts.CenterVignette,
		},
		shifts:  NewShiftScheduler(opts, CellWidth, CellHeight, rng),
		rng:     rng,
		resizes: make(chan Size, 1),
		grid:    &Grid{},
	}
}

// Resize queues a new layout size. Only the latest pending size is kept; it
// takes effect at the start of the next tick.
func (e *Engine) Resize(width, height float64) {
	sz := Size{Width: width, Height: height}
	for {
		select {
		case e.resizes <- sz:
			return
		default:
		}
		select {
		case <-e.resizes:
		default:
		}
	}
}

// Rebuild queues a fresh grid at the current size.
func (e *Engine) Rebuild() {
	e.Resize(e.size.Width, e.size.Height)
}

func (e *Engine) applyResize() {
	var (
		sz      Size
		pending bool
	)
	for {
		select {
		case sz = <-e.resizes:
			pending = true
		default:
			if pending {
				e.setup(sz)
			}
			return
		}
	}
}

func (e *Engine) setup(sz Size) {
	if e.surface == nil {
		return
	}
	e.prepare(e.surface, sz)
	grid := NewGrid(sz.Width, sz.Height, CellWidth, CellHeight, e.palette, e.rng)
	e.grid = grid
	e.size = sz
	e.shifts.Reset()
}

// prepare sizes a surface's buffer for sz and resets its transform and font.
func (e *Engine) prepare(s Surface, sz Size) {
	dpr := s.PixelRatio()
	if dpr <= 0 {
		dpr = 1
	}
	s.SetBufferSize(int(math.Ceil(sz.Width*dpr)), int(math.Ceil(sz.Height*dpr)))
	s.SetTransform(dpr)
	s.SetFont(FontSize, BaselineTop)
}

// Tick advances the animation to now, measured from the start of the loop,
// and redraws if anything visible changed. It reports whether it redrew.
func (e *Engine) Tick(now time.Duration) bool {
	e.applyResize()
	if e.surface == nil || e.grid.Len() == 0 {
		return false
	}
	e.ticks++

	mutated := false
	if now-e.lastMutation > e.opts.Speed {
		e.mutate()
		e.lastMutation = now
		mutated = true
	}

	shifted := e.shifts.Tick(now, e.grid)

	transitioned := false
	if e.opts.Smooth {
		for _, p := range e.grid.Particles() {
			if p.AdvanceTransition() {
				transitioned = true
			}
		}
	}

	if !mutated && !shifted && !transitioned {
		return false
	}
	e.draw(e.surface)
	e.redraws++
	return true
}

func (e *Engine) mutate() {
	cells := e.grid.Particles()
	count := int(math.Floor(float64(len(cells)) * mutationFraction))
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		p := cells[e.rng.Intn(len(cells))]
		p.RandomizeCharacter(e.rng)
		p.SetTargetColor(RandomColor(e.rng, e.palette), e.opts.Smooth)
	}
}

func (e *Engine) draw(s Surface) {
	rows, cols := e.shifts.Offsets()
	e.renderer.Render(s, e.grid, e.size, rows, cols)
}

// Snapshot paints the current frame onto another surface, sizing it first.
func (e *Engine) Snapshot(s Surface) {
	e.prepare(s, e.size)
	e.draw(s)
}

func (e *Engine) Grid() *Grid             { return e.grid }
func (e *Engine) Size() Size              { return e.size }
func (e *Engine) Options() Options        { return e.opts }
func (e *Engine) Shifts() *ShiftScheduler { return e.shifts }

// Stats reports the current grid size and activity counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Columns: e.grid.Columns(),
		Rows:    e.grid.Rows(),
		Ticks:   e.ticks,
		Redraws: e.redraws,
		Batches: e.shifts.Committed(),
	}
}
