package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/game"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

// Model is the Bubble Tea model driving the game loop.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	keys     *KeyMapper
	store    *storage.Store // May be nil; persistence is best-effort
	config   core.RuntimeConfig
	input    core.InputFrame
	quitting bool
	runSaved bool // Whether the current game over has been recorded
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		store:  store,
		config: cfg,
		input:  core.NewInputFrame(),
	}
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

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.input.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The logical playfield is fixed; only the projection changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Backing out of the menu leaves the program.
	if action == core.ActionQuitToMenu && m.game.State() == game.StateMenu {
		m.quitting = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.input)
	m.input.Clear()

	// Record the finished run once per game over.
	if m.game.State() == game.StateGameOver {
		if !m.runSaved {
			if m.store != nil && m.game.Score() > 0 {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveRun(m.game.Difficulty().Key(), m.game.Score())
			}
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() {
	drawFrame(m.screen, m.game.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click is the pointer jump input
	)

	_, err := p.Run()
	return err
}
