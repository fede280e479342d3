package glitch

import (
	"math"
	"math/rand"
	"time"
)

// ShiftBlock is a contiguous run of rows or columns sliding together.
type ShiftBlock struct {
	Indices       []int
	Direction     int
	PixelDistance float64
	Offset        float64
}

func (b *ShiftBlock) done() bool {
	return b.Offset >= b.PixelDistance
}

// ShiftBatch is a set of non-overlapping blocks of one orientation.
type ShiftBatch struct {
	Orientation Orientation
	Blocks      []*ShiftBlock
}

// ShiftScheduler starts shift batches at randomized intervals, slides them a
// fixed number of pixels per tick and commits each finished batch as a grid
// rotation.
type ShiftScheduler struct {
	opts         Options
	cellW, cellH float64
	rng          *rand.Rand

	batch        *ShiftBatch
	lastEnd      time.Duration
	nextInterval time.Duration
	committed    int
}

// NewShiftScheduler returns an idle scheduler with its first interval drawn.
func NewShiftScheduler(opts Options, cellW, cellH float64, rng *rand.Rand) *ShiftScheduler {
	s := &ShiftScheduler{
		opts:  opts,
		cellW: cellW,
		cellH: cellH,
		rng:   rng,
	}
	s.nextInterval = s.drawInterval()
	return s
}

func (s *ShiftScheduler) drawInterval() time.Duration {
	return time.Duration(s.opts.ShiftInterval.Pick(s.rng)) * time.Millisecond
}

// Batch returns the in-flight batch, or nil when idle.
func (s *ShiftScheduler) Batch() *ShiftBatch { return s.batch }

// Active reports whether a batch is in flight.
func (s *ShiftScheduler) Active() bool { return s.batch != nil }

// NextInterval is the pause required after the last batch ended.
func (s *ShiftScheduler) NextInterval() time.Duration { return s.nextInterval }

// Committed counts batches that have finished and rotated the grid.
func (s *ShiftScheduler) Committed() int { return s.committed }

// Reset drops any in-flight batch without rotating the grid.
func (s *ShiftScheduler) Reset() {
	s.batch = nil
}

// Tick advances the scheduler to now and reports whether a batch animated.
func (s *ShiftScheduler) Tick(now time.Duration, g *Grid) bool {
	if !s.opts.ShiftEnabled() {
		s.batch = nil
		return false
	}
	if s.batch == nil {
		if now-s.lastEnd > s.nextInterval {
			s.batch = s.newBatch(g)
		}
		return false
	}

	finished := true
	for _, b := range s.batch.Blocks {
		if b.done() {
			continue
		}
		b.Offset = math.Min(b.Offset+s.opts.ShiftSpeed, b.PixelDistance)
		if !b.done() {
			finished = false
		}
	}
	if finished {
		s.commit(now, g)
	}
	return true
}

func (s *ShiftScheduler) cellSize(o Orientation) float64 {
	if o == OrientationRow {
		return s.cellW
	}
	return s.cellH
}

func (s *ShiftScheduler) newBatch(g *Grid) *ShiftBatch {
	orientation := s.opts.Orientation
	if orientation == OrientationRandom {
		if s.rng.Float64() > 0.5 {
			orientation = OrientationRow
		} else {
			orientation = OrientationColumn
		}
	}
	limit := g.Columns()
	if orientation == OrientationRow {
		limit = g.Rows()
	}
	if limit == 0 {
		return nil
	}

	used := make(map[int]bool)
	count := s.opts.BatchCount.Pick(s.rng)
	batch := &ShiftBatch{Orientation: orientation}
	for b := 0; b < count; b++ {
		if block := s.placeBlock(limit, used, orientation); block != nil {
			batch.Blocks = append(batch.Blocks, block)
		}
	}
	if len(batch.Blocks) == 0 {
		return nil
	}
	return batch
}

// placeBlock tries a bounded number of random placements and gives up rather
// than search exhaustively.
func (s *ShiftScheduler) placeBlock(limit int, used map[int]bool, o Orientation) *ShiftBlock {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		size := s.opts.BlockSize.Pick(s.rng)
		if size <= 0 || size > limit {
			continue
		}
		start := s.rng.Intn(limit - size + 1)
		if overlaps(used, start, size) {
			continue
		}

		indices := make([]int, size)
		for i := range indices {
			indices[i] = start + i
			used[start+i] = true
		}
		direction := 1
		if s.opts.RandomShiftDirection && s.rng.Float64() > 0.5 {
			direction = -1
		}
		units := s.opts.Distance.Pick(s.rng)
		return &ShiftBlock{
			Indices:       indices,
			Direction:     direction,
			PixelDistance: float64(units) * s.cellSize(o),
		}
	}
	return nil
}

func overlaps(used map[int]bool, start, size int) bool {
	for i := start; i < start+size; i++ {
		if used[i] {
			return true
		}
	}
	return false
}

func (s *ShiftScheduler) commit(now time.Duration, g *Grid) {
	batch := s.batch
	unit := s.cellSize(batch.Orientation)
	for _, b := range batch.Blocks {
		steps := int(math.Floor(b.PixelDistance/unit + 0.5))
		for _, idx := range b.Indices {
			if batch.Orientation == OrientationRow {
				g.RotateRow(idx, b.Direction, steps)
			} else {
				g.RotateColumn(idx, b.Direction, steps)
			}
		}
	}
	s.batch = nil
	s.lastEnd = now
	s.nextInterval = s.drawInterval()
	s.committed++
}

// Offsets returns the signed pixel offset of every shifting row and column.
// Rows slide horizontally, columns vertically.
func (s *ShiftScheduler) Offsets() (rows, cols map[int]float64) {
	rows = make(map[int]float64)
	cols = make(map[int]float64)
	if s.batch == nil {
		return rows, cols
	}
	target := cols
	if s.batch.Orientation == OrientationRow {
		target = rows
	}
	for _, b := range s.batch.Blocks {
		offset := b.Offset * float64(b.Direction)
		for _, idx := range b.Indices {
			target[idx] = offset
		}
	}
	return rows, cols
}
