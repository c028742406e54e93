package tui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorslide/internal/core"
	"github.com/vovakirdan/colorslide/internal/puzzle"
	"github.com/vovakirdan/colorslide/internal/registry"
)

var registerTestPack sync.Once

func testEnv(t *testing.T) Env {
	t.Helper()
	one, two := upOnceLevel(t, "one"), upOnceLevel(t, "two")
	registerTestPack.Do(func() {
		registry.Register("tui-test", "TUI Test", func() ([]*puzzle.Level, error) {
			return []*puzzle.Level{one, two}, nil
		})
	})
	return Env{Config: core.DefaultConfig(), Player: "tester"}
}

func sendApp(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am
}

func TestAppPickerToPlayAndBack(t *testing.T) {
	m := NewAppModel(testEnv(t), StartOptions{Pack: "tui-test"})
	if m.screen != screenPicker {
		t.Fatal("app should start on the picker")
	}
	if !strings.Contains(m.View(), "TUI Test") {
		t.Errorf("picker should show the pack title:\n%s", m.View())
	}

	m = sendApp(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenPlay {
		t.Fatal("enter should open the board")
	}
	if m.play.Session().Level().ID() != "two" {
		t.Errorf("playing %q, want two", m.play.Session().Level().ID())
	}

	m = sendApp(t, m, runeKey('b'))
	if m.screen != screenPicker {
		t.Fatal("b should return to the picker")
	}
	if m.picker.Cursor() != 1 {
		t.Errorf("picker cursor = %d, want the level just played", m.picker.Cursor())
	}
}

func TestAppStartsOnBoard(t *testing.T) {
	m := NewAppModel(testEnv(t), StartOptions{Pack: "tui-test", Level: 1, Play: true})
	if m.screen != screenPlay {
		t.Fatal("Play option should skip the picker")
	}
	if m.play.Session().Index() != 1 {
		t.Errorf("Index() = %d, want 1", m.play.Session().Index())
	}

	m = NewAppModel(testEnv(t), StartOptions{Pack: "tui-test", Level: 9, Play: true})
	if m.play.Session().Index() != 0 {
		t.Errorf("out-of-range level should start on the first, got %d", m.play.Session().Index())
	}
}

func TestAppRecordsScreen(t *testing.T) {
	m := NewAppModel(testEnv(t), StartOptions{Pack: "tui-test"})

	m = sendApp(t, m, runeKey('t'))
	if m.screen != screenRecords {
		t.Fatal("t should open records")
	}
	if !strings.Contains(m.View(), "without a database") {
		t.Errorf("records without a store should say so:\n%s", m.View())
	}

	m = sendApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenPicker {
		t.Error("esc should return to the picker")
	}
}

func TestAppQuit(t *testing.T) {
	m := NewAppModel(testEnv(t), StartOptions{Pack: "tui-test"})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || next.(AppModel).View() != "" {
		t.Error("q should quit from the picker")
	}
}
