// Package levels loads puzzle levels from YAML files and from the built-in set.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorslide/internal/puzzle"
	"github.com/vovakirdan/colorslide/internal/puzzle/levels/formats"
)

// ErrLevelNotFound is returned by LoadByID for unknown IDs.
var ErrLevelNotFound = errors.New("level not found")

// Level is a loaded level definition together with where it came from.
type Level struct {
	*puzzle.Level
	Metadata map[string]string
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader. Skipped files are reported to logger;
// a nil logger discards them.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, Logger: logger}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are logged and skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			l.Logger.Warn("skipping level file", "path", path, "error", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID() < levels[j].ID()
	})

	return levels, nil
}

// LoadFile loads a single level file. A file without an id uses its base name.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	return Level{
		Level:    parsed.Level,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID() == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: %w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID()
	}
	return ids, nil
}

// Puzzles strips file metadata, keeping load order.
func Puzzles(levels []Level) []*puzzle.Level {
	out := make([]*puzzle.Level, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.Level
	}
	return out
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext, fallbackID string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			return formats.Level{}, err
		}
		if parsed.Level.ID() == "" {
			return withID(parsed, fallbackID)
		}
		return parsed, nil
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func withID(parsed formats.Level, id string) (formats.Level, error) {
	lvl, err := puzzle.NewLevel(id, parsed.Level.Name(), parsed.Level.Rows(), parsed.Level.InitialTokens())
	if err != nil {
		return formats.Level{}, err
	}
	parsed.Level = lvl
	return parsed, nil
}
