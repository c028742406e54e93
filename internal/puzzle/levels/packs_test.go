package levels_test

import (
	"testing"

	"github.com/vovakirdan/colorslide/internal/puzzle/levels"
	"github.com/vovakirdan/colorslide/internal/registry"
)

func TestClassicPackRegistered(t *testing.T) {
	if !registry.Exists(levels.ClassicPack) {
		t.Fatal("classic pack should register on import")
	}

	lvls, err := registry.Load(levels.ClassicPack)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lvls) != 5 {
		t.Errorf("classic pack has %d levels, want 5", len(lvls))
	}
}

func TestRegisterDir(t *testing.T) {
	levels.RegisterDir("test-dir", "Test Dir", getTestdataPath(), nil)

	lvls, err := registry.Load("test-dir")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if registry.Title("test-dir") != "Test Dir" {
		t.Errorf("Title() = %q", registry.Title("test-dir"))
	}
}
