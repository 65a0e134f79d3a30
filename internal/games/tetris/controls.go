package tetris

// Controls wraps an Engine with the pause switch. While paused, or once the
// game is over, commands are dropped before they reach the engine. Read
// access to the engine is never gated.
type Controls struct {
	engine *Engine
	paused bool
}

// NewControls wraps the given engine, unpaused.
func NewControls(e *Engine) *Controls {
	return &Controls{engine: e}
}

// Engine returns the wrapped engine for render queries.
func (c *Controls) Engine() *Engine {
	return c.engine
}

// TogglePause flips the pause switch and returns the new state.
func (c *Controls) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether command dispatch is suspended.
func (c *Controls) Paused() bool {
	return c.paused
}

// Send forwards a command to the engine unless paused or over.
func (c *Controls) Send(cmd Command) TickResult {
	if c.paused || c.engine.Over() {
		return TickResult{}
	}
	return c.engine.Apply(cmd)
}
