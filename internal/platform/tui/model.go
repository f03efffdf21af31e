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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-run/internal/core"
	"github.com/vovakirdan/egg-run/internal/games/eggrun"
	"github.com/vovakirdan/egg-run/internal/platform/audio"
)

// footerRows is the space below the game screen kept for the help line.
const footerRows = 1

// Model is the Bubble Tea model that runs one Egg Run game.
type Model struct {
	game     *eggrun.Game
	screen   *core.Screen
	tracker  *KeyTracker
	keys     KeyMap
	help     help.Model
	sink     audio.Sink
	logger   *log.Logger
	config   core.RuntimeConfig
	state    string
	quitting bool
}

// NewModel creates a model for game. A nil sink or logger is replaced by a
// silent one.
func NewModel(game *eggrun.Game, sink audio.Sink, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if sink == nil {
		sink = audio.NopSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		tracker: NewKeyTracker(cfg.TickRate),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		sink:    sink,
		logger:  logger,
		config:  cfg,
		state:   eggrun.StateName(game.State()),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "tick_rate", m.config.TickRate, "seed", m.config.Seed)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "state", m.state)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if k, ok := m.keys.Lookup(msg); ok {
		m.tracker.KeyDown(k)
	}
	return m, nil
}

// handleResize only resizes the screen; the level is laid out in world
// units and does not depend on the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame: input first, then physics, then
// the events of both in order.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.tracker.Frame()

	events := m.game.ProcessInput(frame)
	events = append(events, m.game.Update(m.config.FrameTime())...)

	for _, ev := range events {
		m.sink.Play(ev)
		m.logger.Debug("event", "event", ev.String(), "tick", m.game.Tick())
	}

	if name := eggrun.StateName(m.game.State()); name != m.state {
		m.logger.Info("state changed", "from", m.state, "to", name, "reason", reasonOf(m.game.State()))
		m.state = name
		m.tracker.Reset()
	}

	return m, tickCmd(m.config.TickRate)
}

// reasonOf returns the game over reason for logs, or "" for other states.
func reasonOf(s eggrun.State) string {
	if over, ok := s.(eggrun.GameOverState); ok {
		return over.Reason.String()
	}
	return ""
}

// saveScreenshot writes the current screen as plain text under
// ~/.eggrun/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".eggrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("eggrun_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game *eggrun.Game, sink audio.Sink, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, sink, logger, cfg),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
