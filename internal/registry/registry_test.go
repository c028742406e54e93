package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/colorslide/internal/puzzle"
)

func oneLevelPack(t *testing.T) Factory {
	t.Helper()
	lvl, err := puzzle.NewLevel("only", "Only",
		[][]puzzle.Cell{{puzzle.GoalCell(puzzle.ColorRed)}},
		[]puzzle.Token{{Color: puzzle.ColorRed, Pos: puzzle.At(0, 0)}},
	)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return func() ([]*puzzle.Level, error) {
		return []*puzzle.Level{lvl}, nil
	}
}

func TestRegisterAndLoad(t *testing.T) {
	Register("test-load", "Test Load", oneLevelPack(t))

	if !Exists("test-load") {
		t.Fatal("pack should exist after Register")
	}
	if got := Title("test-load"); got != "Test Load" {
		t.Errorf("Title() = %q, want Test Load", got)
	}

	lvls, err := Load("test-load")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lvls) != 1 || lvls[0].ID() != "only" {
		t.Errorf("Load() = %v", lvls)
	}
}

func TestLoadUnknown(t *testing.T) {
	if Exists("test-missing") {
		t.Fatal("unexpected pack")
	}
	if _, err := Load("test-missing"); !errors.Is(err, ErrUnknownPack) {
		t.Errorf("Load() error = %v, want ErrUnknownPack", err)
	}
	if got := Title("test-missing"); got != "test-missing" {
		t.Errorf("Title() = %q, want the ID", got)
	}
}

func TestLoadFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("test-broken", "Broken", func() ([]*puzzle.Level, error) {
		return nil, boom
	})

	if _, err := Load("test-broken"); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want wrapped factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", oneLevelPack(t))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "Dup again", oneLevelPack(t))
}

func TestListSorted(t *testing.T) {
	Register("test-list-b", "B", oneLevelPack(t))
	Register("test-list-a", "A", oneLevelPack(t))

	packs := List()
	for i := 1; i < len(packs); i++ {
		if packs[i-1].ID >= packs[i].ID {
			t.Fatalf("List() not sorted: %v", packs)
		}
	}

	var seen int
	for _, p := range packs {
		if p.ID == "test-list-a" || p.ID == "test-list-b" {
			seen++
		}
	}
	if seen != 2 {
		t.Errorf("List() missing registered packs: %v", packs)
	}
}
