package glitch

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Cell geometry in layout pixels.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
	FontSize   = 16.0
)

// mutationFraction is the share of particles touched by one mutation pass.
const mutationFraction = 0.05

// placementAttempts bounds the random placement tries per shift block.
const placementAttempts = 10

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// Pick draws uniformly from [Min, Max].
func (r Range) Pick(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return rng.Intn(r.Max-r.Min+1) + r.Min
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// Orientation restricts which axis shift batches run along.
type Orientation int

const (
	OrientationRandom Orientation = iota
	OrientationRow
	OrientationColumn
)

// ParseOrientation accepts "random", "row"/"rows" and "column"/"col"/"columns".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random", "any":
		return OrientationRandom, nil
	case "row", "rows":
		return OrientationRow, nil
	case "column", "columns", "col", "cols":
		return OrientationColumn, nil
	}
	return OrientationRandom, fmt.Errorf("unknown orientation %q", s)
}

func (o Orientation) String() string {
	switch o {
	case OrientationRow:
		return "row"
	case OrientationColumn:
		return "column"
	default:
		return "random"
	}
}

// Options tunes the animation.
type Options struct {
	// Colors is the palette particles pick from, as #RGB or #RRGGBB.
	Colors []string
	// Background fills cleared regions on surfaces that paint one.
	Background string
	// Speed is the minimum time between random mutation passes.
	Speed time.Duration
	// Smooth animates colour changes instead of snapping.
	Smooth bool
	// BlockSize is the number of rows or columns per shift block.
	BlockSize Range
	// BatchCount is the number of blocks per shift batch.
	BatchCount Range
	// Distance is the shift distance in cells.
	Distance Range
	// RandomShiftDirection randomizes block direction; otherwise blocks move +1.
	RandomShiftDirection bool
	// ShiftSpeed is pixels advanced per tick. Zero disables shifting.
	ShiftSpeed float64
	// ShiftInterval is the pause between batches, in milliseconds.
	ShiftInterval Range
	Orientation   Orientation

	OuterVignette  bool
	CenterVignette bool
}

// DefaultOptions returns the stock look of the glitch screen.
func DefaultOptions() Options {
	return Options{
		Colors:               []string{"#2b4539", "#61dca3", "#61b3dc"},
		Background:           "#000000",
		Speed:                50 * time.Millisecond,
		Smooth:               true,
		BlockSize:            Range{Min: 1, Max: 3},
		BatchCount:           Range{Min: 3, Max: 5},
		Distance:             Range{Min: 2, Max: 9},
		RandomShiftDirection: true,
		ShiftSpeed:           2,
		ShiftInterval:        Range{Min: 500, Max: 1000},
		Orientation:          OrientationRandom,
		OuterVignette:        true,
	}
}

// Normalize repairs out-of-range values and returns a note for every change.
// Empty or fully malformed palettes fall back to the default palette.
func (o Options) Normalize() (Options, []string) {
	var notes []string
	def := DefaultOptions()

	palette, rejected := ParsePalette(o.Colors)
	for _, bad := range rejected {
		notes = append(notes, fmt.Sprintf("dropped malformed colour %q", bad))
	}
	if len(palette) == 0 {
		if len(o.Colors) > 0 {
			notes = append(notes, "no valid colours, using default palette")
		}
		o.Colors = def.Colors
	} else {
		o.Colors = make([]string, len(palette))
		for i, c := range palette {
			o.Colors[i] = c.Hex()
		}
	}

	if _, ok := HexToRGB(o.Background); !ok {
		if o.Background != "" {
			notes = append(notes, fmt.Sprintf("malformed background %q, using %s", o.Background, def.Background))
		}
		o.Background = def.Background
	}

	if o.Speed < 0 {
		notes = append(notes, "negative speed clamped to 0")
		o.Speed = 0
	}
	if o.ShiftSpeed < 0 {
		notes = append(notes, "negative shift speed clamped to 0")
		o.ShiftSpeed = 0
	}

	o.BlockSize = normalizeRange("block size", o.BlockSize, def.BlockSize, 1, &notes)
	o.BatchCount = normalizeRange("batch count", o.BatchCount, def.BatchCount, 1, &notes)
	o.Distance = normalizeRange("distance", o.Distance, def.Distance, 1, &notes)
	o.ShiftInterval = normalizeRange("shift interval", o.ShiftInterval, o.ShiftInterval, 0, &notes)

	return o, notes
}

func normalizeRange(name string, r, fallback Range, floor int, notes *[]string) Range {
	if r.Min == 0 && r.Max == 0 && floor > 0 {
		return fallback
	}
	if r.Min > r.Max {
		*notes = append(*notes, fmt.Sprintf("%s %s inverted, swapped", name, r))
		r.Min, r.Max = r.Max, r.Min
	}
	if r.Min < floor {
		*notes = append(*notes, fmt.Sprintf("%s minimum raised to %d", name, floor))
		r.Min = floor
	}
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return r
}

// Palette returns the parsed colours, or the default palette when none parse.
func (o Options) Palette() []RGB {
	palette, _ := ParsePalette(o.Colors)
	if len(palette) == 0 {
		palette, _ = ParsePalette(DefaultOptions().Colors)
	}
	return palette
}

// ShiftEnabled reports whether shift batches may run at all.
func (o Options) ShiftEnabled() bool {
	return o.ShiftSpeed > 0
}
