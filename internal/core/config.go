package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int  // Rows cleared so far
	Level    int  // Difficulty level shown in the HUD (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether command dispatch is suspended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Locked is set when the active piece was merged into the playfield
	// during this step; Cleared holds the rows removed by that lock.
	Locked  bool
	Cleared int
}
