package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deepwn/glitchscreen/internal/glitch"
	"github.com/deepwn/glitchscreen/internal/surface"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "record" {
		if err := runRecord(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runTUI(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func runTUI(args []string) error {
	flags := flag.NewFlagSet("glitchscreen", flag.ContinueOnError)
	configFlag := flags.String("config", "", "config file (default $GLITCH_CONFIG or ~/.glitchrc)")
	presetFlag := flags.String("preset", "", "colour preset: "+strings.Join(glitch.PresetNames(), ", "))
	fpsFlag := flags.Int("fps", 0, "frames per second")
	if err := flags.Parse(args); err != nil {
		return err
	}

	path := configPath(*configFlag)
	ov := overrides{preset: *presetFlag, fps: *fpsFlag}
	config, loadErr := loadConfig(path)
	ov.apply(config)

	closeLog, err := setupLogging(config)
	if err != nil {
		return err
	}
	defer closeLog()
	if loadErr != nil {
		log.Printf("config: %v", loadErr)
	}

	m := initialModel(config, ov)
	if loadErr != nil {
		m.errorMessage = loadErr.Error()
	}
	p := tea.NewProgram(m, tea.WithAltScreen())

	watcher, err := watchConfig(path, func(c *Config, err error) {
		p.Send(configReloadedMsg{config: c, err: err})
	})
	if err != nil {
		log.Printf("config reload disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	_, err = p.Run()
	return err
}

// setupLogging sends log output to a file when one is configured or
// GLITCH_DEBUG is set; otherwise logs are dropped so they cannot tear the
// alt screen.
func setupLogging(c *Config) (func(), error) {
	path := c.LogFile
	if path == "" && os.Getenv("GLITCH_DEBUG") != "" {
		path = "glitchscreen.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "glitchscreen")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

func initialModel(config *Config, ov overrides) model {
	m := model{
		config:    config,
		overrides: ov,
		start:     time.Now(),
	}
	m.rebuildEngine()
	return m
}

// rebuildEngine tears down the running engine and starts a fresh one from
// the current config. Pending frames of the old engine are invalidated.
func (m *model) rebuildEngine() {
	opts, notes := m.config.Options()
	for _, note := range notes {
		log.Printf("config: %s", note)
	}
	bg, _ := glitch.HexToRGB(opts.Background)
	m.opts = opts
	m.screen = surface.NewTerminal(glitch.CellWidth, glitch.CellHeight, bg)
	m.engine = glitch.NewEngine(m.screen, opts, nil)
	m.frameGen++
	m.resizeEngine()
}

func (m *model) resizeEngine() {
	rows := m.height - statusBarHeight
	if m.width <= 0 || rows <= 0 {
		return
	}
	size := m.screen.LayoutSize(m.width, rows)
	m.engine.Resize(size.Width, size.Height)
}

func (m model) fps() int {
	if m.config.FPS > 0 {
		return m.config.FPS
	}
	return defaultFPS
}

func (m model) nextFrame() tea.Cmd {
	gen := m.frameGen
	return tea.Tick(time.Second/time.Duration(m.fps()), func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

func (m *model) setError(msg string) tea.Cmd {
	m.errorMessage, m.successMessage = msg, ""
	return m.clearMessageLater()
}

func (m *model) setSuccess(msg string) tea.Cmd {
	m.errorMessage, m.successMessage = "", msg
	return m.clearMessageLater()
}

func (m *model) clearMessageLater() tea.Cmd {
	m.messageGen++
	gen := m.messageGen
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return clearMessageMsg{gen: gen}
	})
}

func (m model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEngine()
		return m, nil

	case frameMsg:
		if msg.gen != m.frameGen || m.paused {
			return m, nil
		}
		m.engine.Tick(msg.at.Sub(m.start))
		return m, m.nextFrame()

	case configReloadedMsg:
		if msg.err != nil {
			log.Printf("config reload: %v", msg.err)
			return m, m.setError(msg.err.Error())
		}
		m.overrides.apply(msg.config)
		m.config = msg.config
		m.rebuildEngine()
		cmd := m.setSuccess("config reloaded")
		if m.paused {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.nextFrame())

	case clearMessageMsg:
		if msg.gen == m.messageGen {
			m.errorMessage, m.successMessage = "", ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")).Background(lipgloss.Color("#161b22"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149")).Background(lipgloss.Color("#161b22"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#61dca3")).Background(lipgloss.Color("#161b22"))
	helpStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#61dca3")).
			Padding(1, 2)
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	rows := m.height - statusBarHeight
	var body string
	if m.help {
		body = lipgloss.Place(m.width, rows, lipgloss.Center, lipgloss.Center, m.helpView())
	} else {
		body = m.screen.View()
	}
	return body + "\n" + m.statusView()
}

func (m model) statusView() string {
	stats := m.engine.Stats()
	state := "running"
	if m.paused {
		state = "paused"
	}
	left := fmt.Sprintf(" %s | %dx%d | batches %d | %s", m.config.Preset, stats.Columns, stats.Rows, stats.Batches, state)

	var right string
	switch {
	case m.errorMessage != "":
		right = errorStyle.Render(" " + m.errorMessage + " ")
	case m.successMessage != "":
		right = successStyle.Render(" " + m.successMessage + " ")
	default:
		right = statusStyle.Render(" ? help ")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusStyle.Render(left+strings.Repeat(" ", gap)) + right
}

func (m model) helpView() string {
	lines := []string{
		"glitchscreen",
		"",
		"  space        Pause / resume",
		"  r            Rebuild the grid",
		"  n            Next colour preset",
		"  s            Export frame as PNG",
		"  t            Export frame as text",
		"  y            Copy frame to clipboard",
		"  ?            Toggle this help",
		"  q, ctrl+c    Quit",
		"",
		fmt.Sprintf("  speed %v  shift %.1fpx/tick  interval %s ms",
			m.opts.Speed, m.opts.ShiftSpeed, m.opts.ShiftInterval),
		fmt.Sprintf("  blocks %s  batch %s  distance %s  orientation %s",
			m.opts.BlockSize, m.opts.BatchCount, m.opts.Distance, m.opts.Orientation),
	}
	return helpStyle.Render(strings.Join(lines, "\n"))
}
