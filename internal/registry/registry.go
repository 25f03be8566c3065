// Package registry provides a global registry of board variants.
// Variants register themselves in init() functions, allowing the CLI
// to list and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/connectx/internal/config"
)

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID      string
	Title   string
	Summary string // e.g. "7x6 - connect4 - cylindrical"
}

// Factory returns a fresh configuration for a variant.
type Factory func() config.GameConfig

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	summaries = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered or if the
// factory produces an invalid configuration.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	cfg := f()
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("registry: variant %q: %v", id, err))
	}

	factories[id] = f
	titles[id] = cfg.Name
	summaries[id] = summarize(cfg)
}

func summarize(cfg config.GameConfig) string {
	s := fmt.Sprintf("%dx%d - connect%d", cfg.Width, cfg.Height, cfg.ConnectLength)
	if cfg.Cylindrical {
		s += " - cylindrical"
	}
	return s
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(factories))
	for id := range factories {
		result = append(result, VariantInfo{
			ID:      id,
			Title:   titles[id],
			Summary: summaries[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns a new configuration for the variant ID.
// Returns an error if the ID is not registered.
func Create(id string) (config.GameConfig, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return config.GameConfig{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
