package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
)

// FileStore keeps one JSON document per save in a directory.
// The file name is the sanitised save name.
type FileStore struct {
	dir    string
	now    func() time.Time
	logger *log.Logger
}

type fileRecord struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	UpdatedAt time.Time     `json:"updated_at"`
	Snapshot  core.Snapshot `json:"snapshot"`
}

// OpenFileStore returns a store rooted at dir, creating it if needed.
func OpenFileStore(dir string, opts ...Option) (*FileStore, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, now: time.Now, logger: buildOptions(opts).logger}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}

// Save writes the snapshot, replacing an existing save with the same name.
func (s *FileStore) Save(name string, snap core.Snapshot) (SaveInfo, error) {
	now := s.now().UTC()
	name = SaveName(name, now)

	rec := fileRecord{ID: uuid.NewString(), Name: name, UpdatedAt: now, Snapshot: snap}
	if existing, err := s.read(name); err == nil {
		rec.ID = existing.ID
	} else if !errors.Is(err, ErrSaveNotFound) {
		return SaveInfo{}, err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return SaveInfo{}, fmt.Errorf("storage: cannot encode %q: %w", name, err)
	}

	// write-then-rename keeps the old save intact if the write fails
	tmp, err := os.CreateTemp(s.dir, ".save-*")
	if err != nil {
		return SaveInfo{}, fmt.Errorf("storage: cannot save %q: %w", name, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return SaveInfo{}, fmt.Errorf("storage: cannot save %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return SaveInfo{}, fmt.Errorf("storage: cannot save %q: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return SaveInfo{}, fmt.Errorf("storage: cannot save %q: %w", name, err)
	}

	return rec.info(), nil
}

// Load returns the snapshot saved as name.
func (s *FileStore) Load(name string) (core.Snapshot, error) {
	rec, err := s.read(config.SafeName(name))
	if err != nil {
		return core.Snapshot{}, err
	}
	return rec.Snapshot, nil
}

// List returns all saves, most recently updated first.
func (s *FileStore) List() ([]SaveInfo, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list %s: %w", s.dir, err)
	}

	saves := make([]SaveInfo, 0, len(matches))
	for _, m := range matches {
		rec, err := s.read(strings.TrimSuffix(filepath.Base(m), ".json"))
		if err != nil {
			s.logger.Warn("skipping unreadable save", "file", m, "err", err)
			continue
		}
		saves = append(saves, rec.info())
	}

	sort.Slice(saves, func(i, j int) bool {
		if !saves[i].UpdatedAt.Equal(saves[j].UpdatedAt) {
			return saves[i].UpdatedAt.After(saves[j].UpdatedAt)
		}
		return saves[i].Name < saves[j].Name
	})
	return saves, nil
}

// Delete removes the save called name. Unknown names return ErrSaveNotFound.
func (s *FileStore) Delete(name string) error {
	name = config.SafeName(name)
	err := os.Remove(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrSaveNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot delete save %q: %w", name, err)
	}
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) read(name string) (fileRecord, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return fileRecord{}, fmt.Errorf("%w: %q", ErrSaveNotFound, name)
	}
	if err != nil {
		return fileRecord{}, fmt.Errorf("storage: cannot read save %q: %w", name, err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fileRecord{}, fmt.Errorf("storage: cannot decode save %q: %w", name, err)
	}
	return rec, nil
}

func (r fileRecord) info() SaveInfo {
	return SaveInfo{
		ID:          r.ID,
		Name:        r.Name,
		Description: describe(r.Name, r.Snapshot.Config),
		UpdatedAt:   r.UpdatedAt,
	}
}
