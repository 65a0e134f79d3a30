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
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/fitness"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Options configures a play session.
type Options struct {
	Config   config.TetrisConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	BoardDir string // Where ctrl+s snapshots go; defaults to ~/.tetris/boards
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	strategy   *fitness.Strategy
	session    string
	boardDir   string
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string // Last board-save message, shown under the help line
	quitting   bool
	overLogged bool // Whether game over has been logged for the current game
}

// NewModel creates a new Bubble Tea model for the given options.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Weights were checked when the config was loaded; a bad set only
	// disables the game-over report.
	strategy, err := fitness.NewStrategy(opts.Config.Fitness.Weights)
	if err != nil {
		logger.Warn("fitness report disabled", "err", err)
	}

	boardDir := opts.BoardDir
	if boardDir == "" {
		boardDir = filepath.Join(os.Getenv("HOME"), ".tetris", "boards")
	}

	session := uuid.New().String()
	return Model{
		game:       tetris.New(opts.Config),
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       NewKeyMap(opts.Config.Keys),
		help:       help.New(),
		logger:     logger.With("session", session[:8]),
		strategy:   strategy,
		session:    session,
		boardDir:   boardDir,
		inputFrame: core.NewInputFrame(),
	}
}

// playHeight leaves the bottom line for the help footer.
func playHeight(h int) int {
	return max(0, h-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtimeConfig())
	m.logger.Info("session started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

func (m Model) runtimeConfig() core.RuntimeConfig {
	rc := m.config
	rc.ScreenH = playHeight(rc.ScreenH)
	return rc
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
	if key.Matches(msg, m.keys.Save) {
		m.saveBoard()
		return m, nil
	}

	if isQuit := m.keys.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.quitting = true
		m.logger.Info("session ended", "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the game running; only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.game.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.runtimeConfig())
		m.gameState = m.game.State()
		m.overLogged = false
		m.status = ""
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	wasPaused := m.gameState.Paused
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Locked {
		m.logger.Debug("piece locked", "score", m.gameState.Score)
	}
	if result.Cleared > 0 {
		m.logger.Info("rows cleared", "rows", result.Cleared, "score", m.gameState.Score, "level", m.gameState.Level)
	}
	if m.gameState.Paused != wasPaused {
		m.logger.Info("pause toggled", "paused", m.gameState.Paused)
	}
	if m.gameState.GameOver && !m.overLogged {
		m.logGameOver()
		m.overLogged = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// logGameOver records the final score with a fitness report of the final board.
func (m Model) logGameOver() {
	if m.logger.GetLevel() <= log.DebugLevel {
		m.game.Render(m.screen)
		m.logger.Debug("final board\n" + m.screen.String())
	}
	if m.strategy == nil {
		m.logger.Info("game over", "score", m.gameState.Score)
		return
	}
	r := m.strategy.Evaluate(m.session, m.gameState.Score, m.game.Engine().Grid())
	m.logger.Info("game over",
		"score", m.gameState.Score,
		"level", m.gameState.Level,
		"holes", r.Holes,
		"max_height", r.MaxHeight,
		"bumpiness", r.Bumpiness,
		"fitness", r.Fitness,
	)
}

// saveBoard writes the current playfield to the board directory.
func (m *Model) saveBoard() {
	e := m.game.Engine()
	name := fmt.Sprintf("%s_%s", m.session[:8], time.Now().Format("20060102_150405"))
	path, err := tetris.SaveBoard(m.boardDir, name, e.Grid(), e.Score())
	if err != nil {
		m.logger.Error("save board", "err", err)
		m.status = "save failed: " + err.Error()
		return
	}
	m.logger.Info("board saved", "path", path)
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
