package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// helpRows is the number of screen rows reserved below the playfield.
const helpRows = 1

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *game.Game
	sink     *Rasterizer
	renderer *lipgloss.Renderer
	logger   *log.Logger

	keys KeyMap
	help help.Model
	hold *HoldTracker

	config        core.RuntimeConfig
	pending       core.InputFrame
	screenshotDir string
	now           func() time.Time

	quitting bool
}

// Option customizes a Model.
type Option func(*Model)

// WithRenderer sets the lipgloss renderer used for output. SSH sessions
// pass a renderer bound to the session so colors match the client terminal.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// WithLogger sets the logger receiving game events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithScreenshotDir sets where ctrl+s screenshots are written.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.screenshotDir = dir }
}

// withClock replaces time.Now; used by tests.
func withClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewModel creates a Bubble Tea model for g.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = g.Config().Timing.TickRate
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:          g,
		sink:          NewRasterizer(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 0)),
		keys:          DefaultKeyMap(),
		help:          h,
		hold:          NewHoldTracker(g.Config().Input.ReleaseDelay),
		config:        cfg,
		pending:       core.NewInputFrame(),
		screenshotDir: config.UserPath("screenshots"),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionFlapDown && !m.hold.Press(m.now()) {
		// Auto-repeat of a held key
		return m, nil
	}
	m.pending.Push(action)
	return m, nil
}

// handleResize refits the playfield. The running game is never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.sink.Resize(msg.Width, core.Max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one tick with the input queued since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.hold.Poll(now) {
		m.pending.Push(core.ActionFlapUp)
	}

	res := m.game.Step(m.pending)
	m.pending.Clear()
	m.logEvents(res)

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// logEvents reports notable game events at debug level.
func (m Model) logEvents(res game.StepResult) {
	for _, e := range res.Events {
		switch e.Kind {
		case game.EventCrash:
			m.logger.Info("crashed", "cause", e.Cause, "score", res.Status.Display, "tick", res.Status.Tick)
		case game.EventRestart:
			m.logger.Info("restarted", "tick", res.Status.Tick)
		default:
			m.logger.Debug(e.Kind.String(), "score", res.Status.Score, "tick", res.Status.Tick)
		}
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.game.Render(m.sink)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.sink.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.sink)
	out := RenderScreen(m.renderer, m.sink.Screen())
	return out + "\n" + m.helpView()
}

func (m Model) helpView() string {
	return m.help.View(m.keys)
}

// Run starts the Bubble Tea program for g in the local terminal.
func Run(g *game.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(g, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
