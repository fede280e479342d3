package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/deepwn/glitchscreen/internal/glitch"
)

const configFileName = ".glitchrc"

// Config mirrors ~/.glitchrc. Pointer fields stay nil when the file leaves
// them out so the preset and built-in defaults show through.
type Config struct {
	Preset     string   `toml:"preset"`
	Colors     []string `toml:"colors"`
	Background string   `toml:"background"`

	Speed                *int     `toml:"speed"`
	Smooth               *bool    `toml:"smooth"`
	BlockSize            []int    `toml:"block_size"`
	BatchCount           []int    `toml:"batch_count"`
	Distance             []int    `toml:"distance"`
	RandomShiftDirection *bool    `toml:"random_shift_direction"`
	ShiftSpeed           *float64 `toml:"shift_speed"`
	ShiftInterval        []int    `toml:"shift_interval"`
	Orientation          string   `toml:"orientation"`
	OuterVignette        *bool    `toml:"outer_vignette"`
	CenterVignette       *bool    `toml:"center_vignette"`

	FPS           int     `toml:"fps"`
	PixelRatio    float64 `toml:"pixel_ratio"`
	SaveDirectory string  `toml:"save_directory"`
	LogFile       string  `toml:"log_file"`

	path     string
	homeDir  string
	unknowns []string
}

func defaultConfig() *Config {
	return &Config{
		Preset:     "default",
		FPS:        60,
		PixelRatio: 1,
	}
}

// configPath picks the explicit path, then $GLITCH_CONFIG, then ~/.glitchrc.
func configPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("GLITCH_CONFIG"); env != "" {
		return env
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(homeDir, configFileName)
}

// loadConfig reads the config at path. A missing file yields the defaults.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	config.path = path
	if homeDir, err := os.UserHomeDir(); err == nil {
		config.homeDir = homeDir
	}

	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return defaultConfig(), fmt.Errorf("failed to decode %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		config.unknowns = append(config.unknowns, key.String())
	}

	if config.FPS <= 0 {
		config.FPS = 60
	}
	if config.PixelRatio <= 0 {
		config.PixelRatio = 1
	}
	config.SaveDirectory = config.expandPath(config.SaveDirectory)
	config.LogFile = config.expandPath(config.LogFile)
	return config, nil
}

func (c *Config) expandPath(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") && c.homeDir != "" {
		value = filepath.Join(c.homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// Options builds engine options: defaults, then the preset, then explicit
// settings. The returned notes describe anything that had to be repaired.
func (c *Config) Options() (glitch.Options, []string) {
	opts := glitch.DefaultOptions()
	var notes []string
	for _, key := range c.unknowns {
		notes = append(notes, fmt.Sprintf("unknown setting %q", key))
	}

	if c.Preset != "" {
		if preset, ok := glitch.LookupPreset(c.Preset); ok {
			opts = preset.Apply(opts)
		} else {
			notes = append(notes, fmt.Sprintf("unknown preset %q", c.Preset))
		}
	}

	if len(c.Colors) > 0 {
		opts.Colors = append([]string(nil), c.Colors...)
	}
	if c.Background != "" {
		opts.Background = c.Background
	}
	if c.Speed != nil {
		opts.Speed = time.Duration(*c.Speed) * time.Millisecond
	}
	if c.Smooth != nil {
		opts.Smooth = *c.Smooth
	}
	if c.RandomShiftDirection != nil {
		opts.RandomShiftDirection = *c.RandomShiftDirection
	}
	if c.ShiftSpeed != nil {
		opts.ShiftSpeed = *c.ShiftSpeed
	}
	if c.OuterVignette != nil {
		opts.OuterVignette = *c.OuterVignette
	}
	if c.CenterVignette != nil {
		opts.CenterVignette = *c.CenterVignette
	}
	if c.Orientation != "" {
		o, err := glitch.ParseOrientation(c.Orientation)
		if err != nil {
			notes = append(notes, err.Error())
		} else {
			opts.Orientation = o
		}
	}

	ranges := []struct {
		name  string
		value []int
		dst   *glitch.Range
	}{
		{"block_size", c.BlockSize, &opts.BlockSize},
		{"batch_count", c.BatchCount, &opts.BatchCount},
		{"distance", c.Distance, &opts.Distance},
		{"shift_interval", c.ShiftInterval, &opts.ShiftInterval},
	}
	for _, r := range ranges {
		if r.value == nil {
			continue
		}
		if len(r.value) != 2 {
			notes = append(notes, fmt.Sprintf("%s needs [min, max], got %v", r.name, r.value))
			continue
		}
		*r.dst = glitch.Range{Min: r.value[0], Max: r.value[1]}
	}

	opts, fixed := opts.Normalize()
	return opts, append(notes, fixed...)
}

// GetSavePath places filename in the save directory, creating it on demand.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
