package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/vovakirdan/colorslide/internal/puzzle"
	"github.com/vovakirdan/colorslide/internal/puzzle/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the classic level set in play order.
func Builtin() ([]*puzzle.Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: reading built-in levels: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]*puzzle.Level, 0, len(names))
	for _, name := range names {
		data, err := builtinFS.ReadFile("builtin/" + name)
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", name, err)
		}
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: built-in %s: %w", name, err)
		}
		out = append(out, parsed.Level)
	}
	return out, nil
}
