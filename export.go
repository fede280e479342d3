package main

import (
	"fmt"
	"os"
	"time"

	"github.com/deepwn/glitchscreen/internal/glitch"
	"github.com/deepwn/glitchscreen/internal/surface"
)

func timestampedName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.Format("20060102-150405"), ext)
}

// exportPNG paints the engine's current frame onto a raster canvas at the
// configured pixel ratio and saves it.
func exportPNG(engine *glitch.Engine, config *Config) (string, error) {
	if engine.Grid().Len() == 0 {
		return "", fmt.Errorf("nothing to export")
	}
	path, err := config.GetSavePath(timestampedName("glitch", "png", time.Now()))
	if err != nil {
		return "", err
	}

	bg, _ := glitch.HexToRGB(engine.Options().Background)
	canvas := surface.NewRaster(config.PixelRatio, bg)
	engine.Snapshot(canvas)
	if err := canvas.FontErr(); err != nil {
		return "", err
	}
	if err := canvas.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}

// exportText writes the terminal frame as plain text, one line per row.
func exportText(screen *surface.Terminal, config *Config) (string, error) {
	if screen.Columns() == 0 || screen.Rows() == 0 {
		return "", fmt.Errorf("nothing to export")
	}
	path, err := config.GetSavePath(timestampedName("glitch", "txt", time.Now()))
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, screen.PlainText()); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
