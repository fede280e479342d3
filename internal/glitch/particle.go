package glitch

import "math/rand"

// CharacterSet is the glyph set particles draw from.
const CharacterSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*()-_{}[]:;<>,.?/"

// ColorStep is how far one AdvanceTransition call moves colour progress.
const ColorStep = 0.05

// progressEpsilon absorbs float drift so a full transition takes exactly
// ceil(1/ColorStep) steps.
const progressEpsilon = 1e-9

// Particle is one character cell of the grid.
type Particle struct {
	Char          byte
	InitialColor  RGB
	CurrentColor  RGB
	TargetColor   RGB
	ColorProgress float64
}

// NewParticle creates a particle showing color and heading for target.
func NewParticle(char byte, c, target RGB) *Particle {
	p := &Particle{
		Char:          char,
		InitialColor:  c,
		CurrentColor:  c,
		TargetColor:   target,
		ColorProgress: 0,
	}
	if c == target {
		p.ColorProgress = 1
	}
	return p
}

func randomCharacter(rng *rand.Rand) byte {
	return CharacterSet[rng.Intn(len(CharacterSet))]
}

// Draw paints the glyph at (x, y) in the current colour.
func (p *Particle) Draw(s Surface, x, y float64) {
	s.SetFillColor(p.CurrentColor)
	s.FillText(string(p.Char), x, y)
}

// RandomizeCharacter swaps the glyph for a random one.
func (p *Particle) RandomizeCharacter(rng *rand.Rand) {
	p.Char = randomCharacter(rng)
}

// SetTargetColor retargets the particle. A smooth change restarts the
// transition from whatever colour is showing right now.
func (p *Particle) SetTargetColor(c RGB, smooth bool) {
	if !smooth {
		p.InitialColor = c
		p.CurrentColor = c
		p.TargetColor = c
		p.ColorProgress = 1
		return
	}
	p.InitialColor = p.CurrentColor
	p.TargetColor = c
	p.ColorProgress = 0
}

// AdvanceTransition moves the colour one step towards the target and reports
// whether anything visible changed.
func (p *Particle) AdvanceTransition() bool {
	if p.ColorProgress >= 1 {
		return false
	}
	p.ColorProgress += ColorStep
	if p.ColorProgress > 1-progressEpsilon {
		p.ColorProgress = 1
	}
	if p.ColorProgress == 1 {
		p.CurrentColor = p.TargetColor
	} else {
		p.CurrentColor = Interpolate(p.InitialColor, p.TargetColor, p.ColorProgress)
	}
	return true
}
