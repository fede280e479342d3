package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/deepwn/glitchscreen/internal/glitch"
)

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?", "h":
		m.help = !m.help
		return m, nil
	case "esc":
		m.help = false
		return m, nil
	case " ", "p":
		return m.togglePause()
	case "r":
		m.engine.Rebuild()
		return m, m.setSuccess("grid rebuilt")
	case "n":
		m.config.Preset = glitch.NextPreset(m.config.Preset)
		m.config.Colors = nil
		m.config.Background = ""
		m.rebuildEngine()
		cmd := m.setSuccess("preset " + m.config.Preset)
		if m.paused {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.nextFrame())
	case "s":
		return m, m.export(ExportPNG)
	case "t":
		return m, m.export(ExportText)
	case "y":
		return m, m.export(ExportClipboard)
	}
	return m, nil
}

// togglePause stops the frame loop by invalidating the pending frame, and
// restarts it with the engine clock shifted past the pause.
func (m model) togglePause() (tea.Model, tea.Cmd) {
	m.frameGen++
	if !m.paused {
		m.paused = true
		m.pausedAt = time.Now()
		return m, nil
	}
	m.paused = false
	m.start = m.start.Add(time.Since(m.pausedAt))
	return m, m.nextFrame()
}

func (m *model) export(kind ExportKind) tea.Cmd {
	var (
		dest string
		err  error
	)
	switch kind {
	case ExportPNG:
		dest, err = exportPNG(m.engine, m.config)
	case ExportText:
		dest, err = exportText(m.screen, m.config)
	case ExportClipboard:
		err = writeClipboardText(m.screen.PlainText())
	}
	if err != nil {
		return m.setError(fmt.Sprintf("%s export failed: %v", kind, err))
	}
	if kind == ExportClipboard {
		return m.setSuccess("copied to clipboard")
	}
	return m.setSuccess("saved to " + dest)
}
