package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxrunner/internal/core"
	"github.com/vovakirdan/boxrunner/internal/runner"
	"github.com/vovakirdan/boxrunner/internal/storage"
)

// fastFallReleaseTicks is how many ticks without a key-repeat event we wait
// before treating the fast-fall key as released. Terminals deliver no key-up
// events, so the hold is inferred from the OS key-repeat stream.
const fastFallReleaseTicks = 6

// Model is the Bubble Tea model driving a runner session.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	mapper     *runner.Mapper
	inputFrame core.InputFrame
	gameState  core.GameState

	fastFallHeld  bool
	ticksSinceRep int

	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		mapper:     runner.NewMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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
	// Global keys take priority over game bindings
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "p", "esc":
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		} else {
			m.inputFrame.Set(core.ActionPause)
		}
		return m, nil
	}

	r := keyRune(msg)
	if r == 0 {
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil
	}

	action := m.mapper.Map(runner.KeyEvent{Kind: runner.KeyDown, Rune: r}, m.gameState.GameOver)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	// Each 's' event, initial press or OS key-repeat, refreshes the hold
	if action == core.ActionFastFallOn {
		m.fastFallHeld = true
		m.ticksSinceRep = 0
	}

	return m, nil
}

// keyRune translates a key message into the rune the game mapper understands.
// Arrow keys alias onto the letter bindings.
func keyRune(msg tea.KeyMsg) rune {
	switch msg.String() {
	case "up":
		return 'w'
	case "down":
		return 's'
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return msg.Runes[0]
	}
	return 0
}

// handleResize processes window resize events. Only the projection changes;
// the world keeps its fixed coordinate space.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.fastFallHeld = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Infer fast-fall release: no key-repeat event for a few ticks means
	// the key came up.
	if m.fastFallHeld {
		m.ticksSinceRep++
		if m.ticksSinceRep > fastFallReleaseTicks {
			m.inputFrame.Set(core.ActionFastFallOff)
			m.fastFallHeld = false
		}
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".boxrunner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
