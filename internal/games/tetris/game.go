package tetris

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game adapts the engine to the platform's fixed-step loop: actions from the
// input frame become engine commands, and gravity ticks are issued every few
// frames according to the configured interval and difficulty.
type Game struct {
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	controls   *Controls

	tickRate      int
	tick          uint64 // Unpaused frames since Reset
	gravityTicker int    // Frames since the last gravity tick

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.TetrisConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game with an empty playfield.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.controls = NewControls(NewEngine(g.rng))
	g.start(cfg)
}

// ResetWithBoard starts a game from an existing playfield and active piece.
func (g *Game) ResetWithBoard(cfg core.RuntimeConfig, grid Grid, piece Piece) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.controls = NewControls(NewEngineWithGrid(g.rng, grid, piece))
	g.start(cfg)
}

func (g *Game) start(cfg core.RuntimeConfig) {
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.gravityTicker = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// Resize updates the screen dimensions without touching the game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Engine exposes the engine for read-only queries (board snapshots, fitness).
func (g *Game) Engine() *Engine {
	return g.controls.Engine()
}

// Step advances the simulation by one frame. Actions are applied in a fixed
// order: pause, left, right, rotate, drop; gravity comes last.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.controls.Engine().Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.controls.TogglePause()
	}
	if in.Has(core.ActionLeft) {
		g.controls.Send(CmdShiftLeft)
	}
	if in.Has(core.ActionRight) {
		g.controls.Send(CmdShiftRight)
	}
	if in.Has(core.ActionRotate) {
		g.controls.Send(CmdRotate)
	}
	if in.Has(core.ActionDrop) {
		g.controls.Send(CmdHardDrop)
	}

	var res TickResult
	if !g.controls.Paused() {
		g.tick++
		g.gravityTicker++
		if g.gravityTicker >= g.DropEveryTicks() {
			g.gravityTicker = 0
			res = g.controls.Send(CmdTick)
		}
	}

	return core.StepResult{
		State:   g.State(),
		Locked:  res.Locked,
		Cleared: res.Cleared,
	}
}

// GravityInterval returns the current time between gravity ticks.
func (g *Game) GravityInterval() time.Duration {
	return g.difficulty.GravityInterval(g.cfg.Gravity, g.controls.Engine().Score(), int(g.tick))
}

// DropEveryTicks converts the gravity interval to frames at the current tick rate.
func (g *Game) DropEveryTicks() int {
	frames := g.GravityInterval().Seconds() * float64(g.tickRate)
	return max(1, int(math.Round(frames)))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	e := g.controls.Engine()
	return core.GameState{
		Score:    e.Score(),
		Level:    g.difficulty.DisplayLevel(e.Score(), int(g.tick)),
		GameOver: e.Over(),
		Paused:   g.controls.Paused(),
	}
}

// Snapshot captures the game state for determinism tests and logging.
type Snapshot struct {
	Tick   uint64
	Score  int
	Level  int
	Shape  Shape
	Cells  [4]Point
	Over   bool
	Paused bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.controls.Engine()
	p := e.Piece()
	st := g.State()
	return Snapshot{
		Tick:   g.tick,
		Score:  st.Score,
		Level:  st.Level,
		Shape:  p.Shape,
		Cells:  p.Cells,
		Over:   st.GameOver,
		Paused: st.Paused,
	}
}
