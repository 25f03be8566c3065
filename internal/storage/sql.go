package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
)

type dialect struct {
	name   string
	driver string
	serial string // auto-increment primary key column type
	dollar bool   // $1 placeholders instead of ?
}

var (
	sqliteDialect   = dialect{name: KindSQLite, driver: "sqlite", serial: "INTEGER PRIMARY KEY AUTOINCREMENT"}
	postgresDialect = dialect{name: KindPostgres, driver: "postgres", serial: "BIGSERIAL PRIMARY KEY", dollar: true}
)

// rebind rewrites ? placeholders for dialects that number them.
func (d dialect) rebind(query string) string {
	if !d.dollar {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// SQLStore keeps saves and finished-game results in a relational database.
type SQLStore struct {
	db  *sql.DB
	d   dialect
	now func() time.Time
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLStore, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return openSQL(sqliteDialect, dbPath)
}

// OpenPostgres connects to PostgreSQL with a lib/pq connection string and runs migrations.
func OpenPostgres(dsn string) (*SQLStore, error) {
	return openSQL(postgresDialect, dsn)
}

func openSQL(d dialect, dsn string) (*SQLStore, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLStore{db: db, d: d, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			config TEXT NOT NULL,
			board TEXT NOT NULL,
			next_is_a INTEGER NOT NULL,
			status TEXT NOT NULL,
			last_col INTEGER,
			last_row INTEGER,
			move_count INTEGER NOT NULL DEFAULT 0,
			updated_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_saves_updated ON saves(updated_at);

		CREATE TABLE IF NOT EXISTS results (
			id ` + s.d.serial + `,
			save_name TEXT NOT NULL,
			variant TEXT NOT NULL,
			winner TEXT NOT NULL,
			moves INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Kind returns the backend name, "sqlite" or "postgres".
func (s *SQLStore) Kind() string {
	return s.d.name
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save inserts or updates the save called name.
func (s *SQLStore) Save(name string, snap core.Snapshot) (SaveInfo, error) {
	now := s.now()
	name = SaveName(name, now)

	cfgData, err := config.Marshal(snap.Config)
	if err != nil {
		return SaveInfo{}, fmt.Errorf("storage: cannot encode config: %w", err)
	}

	var lastCol, lastRow sql.NullInt64
	if snap.LastMove != nil {
		lastCol = sql.NullInt64{Int64: int64(snap.LastMove.X), Valid: true}
		lastRow = sql.NullInt64{Int64: int64(snap.LastMove.Y), Valid: true}
	}
	nextIsA := 0
	if snap.NextIsA {
		nextIsA = 1
	}

	_, err = s.db.Exec(s.d.rebind(
		`INSERT INTO saves
		 (id, name, width, height, config, board, next_is_a, status, last_col, last_row, move_count, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (name) DO UPDATE SET
		   width = excluded.width,
		   height = excluded.height,
		   config = excluded.config,
		   board = excluded.board,
		   next_is_a = excluded.next_is_a,
		   status = excluded.status,
		   last_col = excluded.last_col,
		   last_row = excluded.last_row,
		   move_count = excluded.move_count,
		   updated_at = excluded.updated_at`),
		uuid.NewString(),
		name,
		snap.Config.Width,
		snap.Config.Height,
		string(cfgData),
		snap.Board,
		nextIsA,
		string(snap.Status),
		lastCol,
		lastRow,
		snap.MoveCount,
		formatTime(now),
	)
	if err != nil {
		return SaveInfo{}, fmt.Errorf("storage: cannot save %q: %w", name, err)
	}

	var id string
	if err := s.db.QueryRow(s.d.rebind("SELECT id FROM saves WHERE name = ?"), name).Scan(&id); err != nil {
		return SaveInfo{}, fmt.Errorf("storage: cannot read back %q: %w", name, err)
	}

	return SaveInfo{
		ID:          id,
		Name:        name,
		Description: describe(name, snap.Config),
		UpdatedAt:   now.UTC().Truncate(time.Microsecond),
	}, nil
}

// Load returns the snapshot saved as name.
func (s *SQLStore) Load(name string) (core.Snapshot, error) {
	name = config.SafeName(name)

	var (
		snap             core.Snapshot
		cfgData, status  string
		nextIsA          int
		lastCol, lastRow sql.NullInt64
	)
	err := s.db.QueryRow(s.d.rebind(
		`SELECT config, board, next_is_a, status, last_col, last_row, move_count
		 FROM saves
		 WHERE name = ?`),
		name,
	).Scan(&cfgData, &snap.Board, &nextIsA, &status, &lastCol, &lastRow, &snap.MoveCount)

	if errors.Is(err, sql.ErrNoRows) {
		return core.Snapshot{}, fmt.Errorf("%w: %q", ErrSaveNotFound, name)
	}
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("storage: cannot query save %q: %w", name, err)
	}

	if err := yaml.Unmarshal([]byte(cfgData), &snap.Config); err != nil {
		return core.Snapshot{}, fmt.Errorf("storage: cannot decode config of %q: %w", name, err)
	}
	snap.NextIsA = nextIsA != 0
	snap.Status = core.Status(status)
	if lastCol.Valid && lastRow.Valid {
		snap.LastMove = &core.Position{X: int(lastCol.Int64), Y: int(lastRow.Int64)}
	}

	return snap, nil
}

// List returns all saves, most recently updated first.
func (s *SQLStore) List() ([]SaveInfo, error) {
	rows, err := s.db.Query(
		`SELECT id, name, width, height, updated_at
		 FROM saves
		 ORDER BY updated_at DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var saves []SaveInfo
	for rows.Next() {
		var (
			info      SaveInfo
			w, h      int
			updatedAt any
		)
		if err := rows.Scan(&info.ID, &info.Name, &w, &h, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.Description = fmt.Sprintf("%s - %dx%d", info.Name, w, h)
		info.UpdatedAt = parseTime(updatedAt)
		saves = append(saves, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return saves, nil
}

// Delete removes the save called name. Unknown names return ErrSaveNotFound.
func (s *SQLStore) Delete(name string) error {
	name = config.SafeName(name)

	res, err := s.db.Exec(s.d.rebind("DELETE FROM saves WHERE name = ?"), name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete save %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrSaveNotFound, name)
	}
	return nil
}
