// Package storage persists game snapshots under user-chosen save names.
// Backends: a SQL store (pure-Go SQLite or PostgreSQL) and a directory of JSON files.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
)

// Backend kinds accepted by Open.
const (
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
	KindJSON     = "json"
)

// Default locations used when no DSN is given.
const (
	DefaultSQLitePath = "~/.connectx/connectx.db"
	DefaultJSONDir    = "~/.connectx/saves"
)

// ErrSaveNotFound is returned when a save name is unknown.
var ErrSaveNotFound = errors.New("storage: save not found")

// SaveInfo describes a stored game without its board.
type SaveInfo struct {
	ID          string
	Name        string
	Description string // "<name> - WxH"
	UpdatedAt   time.Time
}

// Store is a persistence backend for snapshots.
// Saving under an existing name replaces that save and keeps its ID.
type Store interface {
	Save(name string, snap core.Snapshot) (SaveInfo, error)
	Load(name string) (core.Snapshot, error)
	List() ([]SaveInfo, error)
	Delete(name string) error
	Close() error
}

// Option configures a store opened with Open.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger for recoverable problems such as unreadable saves.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Open returns the backend for kind. An empty dsn selects the default location.
func Open(kind, dsn string, opts ...Option) (Store, error) {
	switch kind {
	case KindSQLite, "":
		if dsn == "" {
			dsn = DefaultSQLitePath
		}
		return OpenSQLite(dsn)
	case KindPostgres:
		if dsn == "" {
			return nil, errors.New("storage: postgres needs a connection string")
		}
		return OpenPostgres(dsn)
	case KindJSON:
		if dsn == "" {
			dsn = DefaultJSONDir
		}
		return OpenFileStore(dsn, opts...)
	default:
		return nil, fmt.Errorf("storage: unknown store kind %q (want sqlite, postgres or json)", kind)
	}
}

// SaveName sanitises name the same way configuration names are. An empty
// name becomes a timestamped default.
func SaveName(name string, now time.Time) string {
	safe := config.SafeName(name)
	if safe == "" {
		return DefaultSaveName(now)
	}
	return safe
}

// DefaultSaveName returns Save_YYYYMMDD_HHMMSS for now.
func DefaultSaveName(now time.Time) string {
	return "Save_" + now.Format("20060102_150405")
}

func describe(name string, cfg config.GameConfig) string {
	return fmt.Sprintf("%s - %dx%d", name, cfg.Width, cfg.Height)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02 15:04:05.000000"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime handles both driver-decoded times and text columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case []byte:
		return parseTime(string(v))
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
