// Package registry provides a global registry of level packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and load level sets without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/colorslide/internal/puzzle"
)

// ErrUnknownPack is returned by Load for IDs that were never registered.
var ErrUnknownPack = errors.New("registry: unknown pack")

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
}

// Factory produces the levels of a pack in play order.
// It is called on every Load, so packs backed by files pick up edits.
type Factory func() ([]*puzzle.Level, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pack to the registry.
// Panics if a pack with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PackInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load builds the levels of the pack with the given ID.
func Load(id string) ([]*puzzle.Level, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPack, id)
	}

	lvls, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: loading pack %q: %w", id, err)
	}
	return lvls, nil
}

// Title returns the display title of a pack, or the ID if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
