package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.DefaultKeyBindings())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"w", runeKey('w'), core.ActionRotate, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDrop, false},
		{"s", runeKey('s'), core.ActionDrop, false},
		{"space", runeKey(' '), core.ActionPause, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	kb := config.DefaultKeyBindings()
	kb.Left = []string{"h"}
	km := NewKeyMap(kb)

	if action, _ := km.MapKey(runeKey('h')); action != core.ActionLeft {
		t.Errorf("Expected h to map to Left, got %v", action)
	}
	if action, _ := km.MapKey(runeKey('a')); action != core.ActionNone {
		t.Errorf("Expected a to be unbound, got %v", action)
	}
}

func TestKeyMapHelpLabels(t *testing.T) {
	km := NewKeyMap(config.DefaultKeyBindings())
	if got := km.Pause.Help().Key; !strings.HasPrefix(got, "space") {
		t.Errorf("Pause help key = %q, want space first", got)
	}
	if got := len(km.FullHelp()); got != 2 {
		t.Errorf("FullHelp columns = %d, want 2", got)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMap(config.DefaultKeyBindings())
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('a'), &frame) {
		t.Error("a is not a quit key")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("Expected Left in frame")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should request quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("Quit must not reach the game")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawColorText(0, 1, "[]", core.ColorRed)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "[]") {
		t.Errorf("Rendered output lost text: %q", out)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultTetrisConfig()
	m := NewModel(Options{
		Config:   cfg,
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42},
		BoardDir: t.TempDir(),
	})
	m.Init()
	return m
}

func TestModelTickAndPause(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(runeKey('p'))
	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Error("Expected tick to re-arm")
	}
	mm := next.(Model)
	if !mm.gameState.Paused {
		t.Error("Expected pause after p and a tick")
	}
	if mm.inputFrame.Has(core.ActionPause) {
		t.Error("Expected input frame to be cleared after the tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if !next.(Model).quitting {
		t.Error("Expected quitting flag")
	}
	if got := next.View(); got != "" {
		t.Errorf("View after quit = %q, want empty", got)
	}
}

func TestModelSaveBoard(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	mm := next.(Model)
	if !strings.HasPrefix(mm.status, "saved ") {
		t.Fatalf("status = %q", mm.status)
	}

	entries, err := os.ReadDir(mm.boardDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected one board file, got %d", len(entries))
	}

	path := strings.TrimPrefix(mm.status, "saved ")
	grid, score, err := tetris.LoadBoard(path)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if score != 0 || grid != (tetris.Grid{}) {
		t.Error("Expected an empty board at game start")
	}
}

func TestModelViewHasFooter(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, "Tetris") {
		t.Error("Expected game title in view")
	}
	if !strings.Contains(out, "quit") {
		t.Error("Expected help footer in view")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	before := m.game.Snapshot()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	mm := next.(Model)
	if mm.screen.Width() != 100 || mm.screen.Height() != 39 {
		t.Errorf("Screen = %dx%d, want 100x39", mm.screen.Width(), mm.screen.Height())
	}
	if after := mm.game.Snapshot(); after != before {
		t.Error("Resize must not reset the game")
	}
}

func TestModelLogsFinalBoardAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	m := NewModel(Options{
		Config:   config.DefaultTetrisConfig(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42},
		Logger:   logger,
		BoardDir: t.TempDir(),
	})
	m.Init()
	m.logGameOver()

	out := buf.String()
	if !strings.Contains(out, "final board") {
		t.Fatalf("Expected final board at debug level, got:\n%s", out)
	}
	if !strings.Contains(out, "SCORE") {
		t.Errorf("Expected the rendered panel in the board dump, got:\n%s", out)
	}
	if !strings.Contains(out, "game over") {
		t.Errorf("Expected game over entry, got:\n%s", out)
	}
}

func TestModelSkipsFinalBoardAtInfo(t *testing.T) {
	var buf bytes.Buffer
	m := NewModel(Options{
		Config:   config.DefaultTetrisConfig(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42},
		Logger:   log.New(&buf),
		BoardDir: t.TempDir(),
	})
	m.Init()
	m.logGameOver()

	if strings.Contains(buf.String(), "final board") {
		t.Error("Board dump must stay at debug level")
	}
}
