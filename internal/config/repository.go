package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ErrConfigNotFound is returned by Repository.Load for unknown IDs.
var ErrConfigNotFound = errors.New("config: configuration not found")

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9 _\-]`)

// SafeName replaces characters that are not letters, digits, space, '_' or '-' with '_'.
func SafeName(name string) string {
	return unsafeNameChars.ReplaceAllString(strings.TrimSpace(name), "_")
}

// Repository stores named configurations as YAML files in a directory.
// The file name (without extension) is the configuration ID.
type Repository struct {
	dir string
}

// NewRepository returns a repository rooted at dir, creating it if needed.
func NewRepository(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("config: cannot create directory %s: %w", dir, err)
	}
	return &Repository{dir: dir}, nil
}

// Dir returns the directory backing the repository.
func (r *Repository) Dir() string {
	return r.dir
}

// Save writes cfg and returns its ID.
// An existing file for the same configuration name is replaced.
func (r *Repository) Save(cfg GameConfig) (string, error) {
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	safe := SafeName(cfg.Name)
	id := fmt.Sprintf("%s - %dx%d - connect%d", safe, cfg.Width, cfg.Height, cfg.ConnectLength)

	ids, err := r.ids()
	if err != nil {
		return "", err
	}
	same := sameNameID(safe)
	for _, existing := range ids {
		if existing == id || !same.MatchString(existing) {
			continue
		}
		if err := os.Remove(r.path(existing)); err != nil {
			return "", fmt.Errorf("config: cannot replace %s: %w", existing, err)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("config: cannot encode %s: %w", id, err)
	}
	if err := os.WriteFile(r.path(id), data, 0o644); err != nil {
		return "", fmt.Errorf("config: cannot write %s: %w", id, err)
	}
	return id, nil
}

// List returns the IDs of all stored configurations, sorted.
func (r *Repository) List() ([]string, error) {
	return r.ids()
}

// Load reads the configuration with the given ID.
func (r *Repository) Load(id string) (GameConfig, error) {
	data, err := os.ReadFile(r.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return GameConfig{}, fmt.Errorf("%w: %q", ErrConfigNotFound, id)
	}
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: cannot read %s: %w", id, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: cannot parse %s: %w", id, err)
	}
	return cfg, nil
}

// Delete removes the configuration with the given ID. Unknown IDs are ignored.
func (r *Repository) Delete(id string) error {
	err := os.Remove(r.path(id))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: cannot delete %s: %w", id, err)
	}
	return nil
}

// sameNameID matches IDs whose name part is exactly safe.
func sameNameID(safe string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(safe) + ` - \d+x\d+ - connect\d+$`)
}

func (r *Repository) path(id string) string {
	return filepath.Join(r.dir, id+".yaml")
}

func (r *Repository) ids() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(r.dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("config: cannot list %s: %w", r.dir, err)
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, strings.TrimSuffix(filepath.Base(m), ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}
