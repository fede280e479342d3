package main

import (
	"time"

	"github.com/deepwn/glitchscreen/internal/glitch"
	"github.com/deepwn/glitchscreen/internal/surface"
)

type model struct {
	width  int
	height int

	config    *Config
	overrides overrides
	opts      glitch.Options
	engine    *glitch.Engine
	screen    *surface.Terminal

	start    time.Time
	pausedAt time.Time
	paused   bool
	frameGen int

	help           bool
	errorMessage   string
	successMessage string
	messageGen     int
}

// overrides holds command-line settings that win over the config file,
// including after a reload.
type overrides struct {
	preset string
	fps    int
}

func (o overrides) apply(c *Config) {
	if o.preset != "" {
		c.Preset = o.preset
	}
	if o.fps > 0 {
		c.FPS = o.fps
	}
}

// frameMsg is one paint opportunity. Frames from an older generation were
// scheduled before a pause or engine swap and are dropped.
type frameMsg struct {
	gen int
	at  time.Time
}

type configReloadedMsg struct {
	config *Config
	err    error
}

type clearMessageMsg struct {
	gen int
}
