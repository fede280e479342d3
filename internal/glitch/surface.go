package glitch

// Baseline selects the vertical anchor used by FillText.
type Baseline int

const (
	// BaselineTop anchors text by the top of its em box.
	BaselineTop Baseline = iota
	// BaselineAlphabetic anchors text on the alphabetic baseline.
	BaselineAlphabetic
)

// Surface is the drawing target the engine paints into. Coordinates passed to
// FillText and ClearRect are layout pixels; the surface applies the transform
// set with SetTransform to reach its internal buffer.
type Surface interface {
	// PixelRatio reports device pixels per layout pixel.
	PixelRatio() float64
	// SetBufferSize resizes the internal pixel buffer, in device pixels.
	SetBufferSize(width, height int)
	// SetTransform resets the layout-to-device transform to a uniform scale.
	SetTransform(scale float64)
	SetFont(size float64, baseline Baseline)
	SetFillColor(c RGB)
	FillText(text string, x, y float64)
	ClearRect(x, y, width, height float64)
}

// Overlay is implemented by surfaces that can darken their edges or centre
// after each redraw.
type Overlay interface {
	Vignette(outer, center bool)
}

// Size is a layout size in pixels.
type Size struct {
	Width, Height float64
}
