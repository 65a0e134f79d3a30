package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the key bindings for play. It is built from the configured
// key lists and implements help.KeyMap for the footer.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Rotate  key.Binding
	Drop    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Save    key.Binding
	Quit    key.Binding
}

// NewKeyMap creates bindings from the configured keys.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Left:    binding(kb.Left, "left"),
		Right:   binding(kb.Right, "right"),
		Rotate:  binding(kb.Rotate, "rotate"),
		Drop:    binding(kb.Drop, "drop"),
		Pause:   binding(kb.Pause, "pause"),
		Restart: binding(kb.Restart, "restart"),
		Save:    binding(kb.Save, "save board"),
		Quit:    binding(kb.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = displayKey(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// displayKey returns the help label for a key name.
func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Pause, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Drop},
		{k.Pause, k.Restart, k.Save, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// The save binding is not a game action and is handled by the model.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, k.Drop):
		return core.ActionDrop, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
