package levels

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorslide/internal/puzzle"
	"github.com/vovakirdan/colorslide/internal/registry"
)

// Pack IDs known to the platform.
const (
	ClassicPack = "classic"
	CustomPack  = "custom"
)

func init() {
	registry.Register(ClassicPack, "Classic", Builtin)
}

// RegisterDir registers a pack backed by a directory of level files.
// The directory is rescanned on every registry.Load.
func RegisterDir(id, title, root string, logger *log.Logger) {
	loader := NewLoader(root, logger)
	registry.Register(id, title, func() ([]*puzzle.Level, error) {
		lvls, err := loader.LoadAll()
		if err != nil {
			return nil, err
		}
		return Puzzles(lvls), nil
	})
}
