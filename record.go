package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/deepwn/glitchscreen/internal/glitch"
	"github.com/deepwn/glitchscreen/internal/surface"
)

type recordSettings struct {
	width, height float64
	frames        int
	fps           int
	scale         float64
	out           string
}

// runRecord drives the engine headless into a raster canvas and writes one
// PNG per frame.
func runRecord(args []string) error {
	flags := flag.NewFlagSet("record", flag.ContinueOnError)
	configFlag := flags.String("config", "", "config file (default $GLITCH_CONFIG or ~/.glitchrc)")
	presetFlag := flags.String("preset", "", "colour preset")
	fpsFlag := flags.Int("fps", 0, "frames per second")
	width := flags.Float64("width", 800, "canvas width in layout pixels")
	height := flags.Float64("height", 450, "canvas height in layout pixels")
	frames := flags.Int("frames", 120, "number of frames to write")
	scale := flags.Float64("scale", 0, "device pixel ratio (default from config)")
	out := flags.String("out", "frames", "output directory")
	if err := flags.Parse(args); err != nil {
		return err
	}

	config, err := loadConfig(configPath(*configFlag))
	if err != nil {
		return err
	}
	overrides{preset: *presetFlag, fps: *fpsFlag}.apply(config)
	opts, notes := config.Options()
	for _, note := range notes {
		log.Printf("config: %s", note)
	}

	rs := recordSettings{
		width:  *width,
		height: *height,
		frames: *frames,
		fps:    config.FPS,
		scale:  *scale,
		out:    *out,
	}
	if rs.scale <= 0 {
		rs.scale = config.PixelRatio
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	written, err := record(ctx, opts, rs, glitch.NewTickerFrames(rs.fps))
	log.Printf("wrote %d frames to %s", written, rs.out)
	return err
}

func record(ctx context.Context, opts glitch.Options, rs recordSettings, frames glitch.FrameSource) (int, error) {
	if rs.width <= 0 || rs.height <= 0 {
		return 0, fmt.Errorf("invalid canvas size %gx%g", rs.width, rs.height)
	}
	if err := os.MkdirAll(rs.out, 0755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}

	bg, _ := glitch.HexToRGB(opts.Background)
	canvas := surface.NewRaster(rs.scale, bg)
	engine := glitch.NewEngine(canvas, opts, nil)

	resizes := make(chan glitch.Size, 1)
	resizes <- glitch.Size{Width: rs.width, Height: rs.height}

	loop := glitch.NewLoop(engine, frames, resizes)
	var (
		written int
		saveErr error
	)
	loop.AfterTick = func(now time.Duration, redrawn bool) bool {
		if engine.Grid().Len() == 0 {
			return true
		}
		if err := canvas.FontErr(); err != nil {
			saveErr = err
			return false
		}
		path := filepath.Join(rs.out, fmt.Sprintf("frame-%04d.png", written))
		if err := canvas.SavePNG(path); err != nil {
			saveErr = err
			return false
		}
		written++
		return written < rs.frames
	}

	loop.Start(ctx)
	<-loop.Done()
	loop.Stop()
	return written, saveErr
}
