package surface

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/deepwn/glitchscreen/internal/glitch"
)

// Raster is a pixel canvas. Layout coordinates are scaled by the pixel
// ratio to reach the backing image.
type Raster struct {
	ratio      float64
	scale      float64
	background glitch.RGB
	fill       glitch.RGB

	face     font.Face
	ascent   float64
	baseline glitch.Baseline
	fontErr  error

	dc *gg.Context
}

// NewRaster returns a 1x1 canvas; the engine sizes it on its first resize.
func NewRaster(pixelRatio float64, background glitch.RGB) *Raster {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	r := &Raster{
		ratio:      pixelRatio,
		scale:      1,
		background: background,
	}
	r.SetBufferSize(1, 1)
	return r
}

func (r *Raster) PixelRatio() float64 { return r.ratio }

// SetBufferSize replaces the backing image, filled with the background.
func (r *Raster) SetBufferSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r.dc = gg.NewContext(width, height)
	r.dc.SetColor(r.background.Color())
	r.dc.Clear()
	if r.face != nil {
		r.dc.SetFontFace(r.face)
	}
	r.dc.SetColor(r.fill.Color())
}

func (r *Raster) SetTransform(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	r.scale = scale
	r.dc.Identity()
	r.dc.Scale(scale, scale)
}

// SetFont loads Go Mono at size. A font that cannot be loaded leaves text
// drawing disabled; FontErr reports why.
func (r *Raster) SetFont(size float64, baseline glitch.Baseline) {
	r.baseline = baseline
	face, err := monoFace(size)
	if err != nil {
		r.fontErr = err
		r.face = nil
		return
	}
	r.fontErr = nil
	r.face = face
	r.ascent = float64(face.Metrics().Ascent) / 64
	r.dc.SetFontFace(face)
}

// FontErr is the error from the last SetFont, if any.
func (r *Raster) FontErr() error { return r.fontErr }

func (r *Raster) SetFillColor(c glitch.RGB) {
	r.fill = c
	r.dc.SetColor(c.Color())
}

func (r *Raster) FillText(text string, x, y float64) {
	if r.face == nil {
		return
	}
	if r.baseline == glitch.BaselineTop {
		y += r.ascent
	}
	r.dc.DrawString(text, x, y)
}

func (r *Raster) ClearRect(x, y, width, height float64) {
	r.dc.Push()
	r.dc.SetColor(r.background.Color())
	r.dc.DrawRectangle(x, y, width, height)
	r.dc.Fill()
	r.dc.Pop()
}

// Vignette darkens the canvas edges (outer) and/or its middle (center) with
// radial gradients.
func (r *Raster) Vignette(outer, center bool) {
	w := float64(r.dc.Width()) / r.scale
	h := float64(r.dc.Height()) / r.scale
	cx, cy := w/2, h/2
	radius := math.Hypot(cx, cy)
	if radius == 0 {
		return
	}
	transparent := color.RGBA{}

	r.dc.Push()
	defer r.dc.Pop()
	if outer {
		g := gg.NewRadialGradient(cx, cy, 0, cx, cy, radius)
		g.AddColorStop(0, transparent)
		g.AddColorStop(0.6, transparent)
		g.AddColorStop(1, color.RGBA{A: 0xff})
		r.dc.SetFillStyle(g)
		r.dc.DrawRectangle(0, 0, w, h)
		r.dc.Fill()
	}
	if center {
		g := gg.NewRadialGradient(cx, cy, 0, cx, cy, radius)
		g.AddColorStop(0, color.RGBA{A: 204})
		g.AddColorStop(0.6, transparent)
		g.AddColorStop(1, transparent)
		r.dc.SetFillStyle(g)
		r.dc.DrawRectangle(0, 0, w, h)
		r.dc.Fill()
	}
}

// Image returns the backing image.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// SavePNG writes the canvas to path.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}
