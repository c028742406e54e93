package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorslide/internal/core"
	"github.com/vovakirdan/colorslide/internal/puzzle"
	"github.com/vovakirdan/colorslide/internal/session"
	"github.com/vovakirdan/colorslide/internal/storage"
)

// upOnceLevel is solved by a single move up.
func upOnceLevel(t *testing.T, id string) *puzzle.Level {
	t.Helper()
	rows := [][]puzzle.Cell{
		{puzzle.GoalCell(puzzle.ColorRed), puzzle.EmptyCell()},
		{puzzle.EmptyCell(), puzzle.EmptyCell()},
	}
	lvl, err := puzzle.NewLevel(id, id, rows, []puzzle.Token{{Color: puzzle.ColorRed, Pos: puzzle.At(1, 0)}})
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return lvl
}

func newTestPlay(t *testing.T, withStore bool) (PlayModel, *storage.Store) {
	t.Helper()

	var store *storage.Store
	if withStore {
		var err error
		store, err = storage.Open(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("storage.Open: %v", err)
		}
		t.Cleanup(func() { store.Close() })
	}

	sess, err := session.New([]*puzzle.Level{upOnceLevel(t, "one"), upOnceLevel(t, "two")}, 0)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}

	env := Env{Store: store, Config: core.DefaultConfig(), Player: "tester"}
	return NewPlayModel(env, "test-pack", sess), store
}

func send(t *testing.T, m PlayModel, msg tea.Msg) PlayModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PlayModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm
}

func TestPlaySolveSavesRun(t *testing.T) {
	m, store := newTestPlay(t, true)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if !m.Session().Solved() {
		t.Fatal("level should be solved after moving up")
	}

	best, err := store.Best("test-pack", "one")
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if best == nil || best.Moves != 1 || best.Player != "tester" {
		t.Fatalf("Best() = %+v", best)
	}
	if !strings.Contains(m.View(), "New best!") {
		t.Error("view should announce a new best run")
	}

	// Further moves are ignored and nothing else is saved.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	runs, _ := store.BestRuns("test-pack", "one", 10)
	if len(runs) != 1 {
		t.Errorf("expected 1 saved run, got %d", len(runs))
	}

	m = send(t, m, runeKey('n'))
	if m.Session().Index() != 1 || m.Session().Solved() {
		t.Errorf("n should open the next level, index=%d", m.Session().Index())
	}
}

func TestPlayNextRequiresSolve(t *testing.T) {
	m, _ := newTestPlay(t, false)

	m = send(t, m, runeKey('n'))
	if m.Session().Index() != 0 {
		t.Error("n before solving should not change level")
	}
}

func TestPlayPauseBlocksMoves(t *testing.T) {
	m, _ := newTestPlay(t, false)

	m = send(t, m, runeKey('p'))
	if !m.Session().Paused() {
		t.Fatal("p should pause")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the overlay")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Session().Moves() != 0 {
		t.Error("moves should be ignored while paused")
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Session().Moves() != 1 {
		t.Errorf("Moves() = %d after resume, want 1", m.Session().Moves())
	}
}

func TestPlayReset(t *testing.T) {
	m, _ := newTestPlay(t, false)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, runeKey('r'))
	if m.Session().Moves() != 0 {
		t.Errorf("Moves() = %d after reset, want 0", m.Session().Moves())
	}
}

func TestPlayMouseSwipe(t *testing.T) {
	m, _ := newTestPlay(t, false)

	press := tea.MouseMsg{X: boardLeft + 2, Y: boardTop + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: boardLeft + 2, Y: boardTop, Action: tea.MouseActionRelease}

	m = send(t, m, press)
	m = send(t, m, release)
	if !m.Session().Solved() {
		t.Errorf("upward drag should move up and solve, moves=%d", m.Session().Moves())
	}
}

func TestPlayMouseOutsideBoardIgnored(t *testing.T) {
	m, _ := newTestPlay(t, false)

	m = send(t, m, tea.MouseMsg{X: 70, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: 70, Y: 10, Action: tea.MouseActionRelease})
	if m.Session().Moves() != 0 {
		t.Error("drag starting outside the board should be ignored")
	}
}

func TestPlayBackAndQuit(t *testing.T) {
	m, _ := newTestPlay(t, false)

	m = send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b should request the level picker")
	}

	m, _ = newTestPlay(t, false)
	next, cmd := m.Update(runeKey('q'))
	if !next.(PlayModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestPlayViewShowsHUD(t *testing.T) {
	m, _ := newTestPlay(t, false)
	view := m.View()

	for _, want := range []string{"Level 1/2", "Moves:", "Time: 00:00:0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
