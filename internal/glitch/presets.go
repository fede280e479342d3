package glitch

import "sort"

// Preset is a named palette and background.
type Preset struct {
	Name       string
	Colors     []string
	Background string
}

var presets = map[string]Preset{
	"default": {
		Name:       "default",
		Colors:     []string{"#2b4539", "#61dca3", "#61b3dc"},
		Background: "#0d1117",
	},
	"minimal": {
		Name:       "minimal",
		Colors:     []string{"#3f3f46", "#a1a1aa", "#d4d4d8"},
		Background: "#000000",
	},
	"hacker": {
		Name:       "hacker",
		Colors:     []string{"#14532d", "#16a34a", "#4ade80"},
		Background: "#0a0f0a",
	},
	"cyber": {
		Name:       "cyber",
		Colors:     []string{"#22d3ee", "#c084fc", "#f472b6"},
		Background: "#0f0f1a",
	},
}

// PresetNames lists the known presets in a stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, false
	}
	p.Colors = append([]string(nil), p.Colors...)
	return p, true
}

// NextPreset returns the preset after name, wrapping around. Unknown names
// start from the first preset.
func NextPreset(name string) string {
	names := PresetNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Apply copies the preset palette and background onto o.
func (p Preset) Apply(o Options) Options {
	o.Colors = append([]string(nil), p.Colors...)
	o.Background = p.Background
	return o
}
