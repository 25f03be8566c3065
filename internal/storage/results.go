package storage

import (
	"fmt"
	"time"
)

// MatchResult is the outcome of a finished game.
type MatchResult struct {
	ID        int64
	SaveName  string
	Variant   string // configuration summary, e.g. "Classical 7x6 - 7x6 - connect4"
	Winner    string // "A", "B" or "draw"
	Moves     int
	CreatedAt time.Time
}

// VariantStats contains aggregated results for one variant.
type VariantStats struct {
	Variant    string
	Games      int
	WinsA      int
	WinsB      int
	Draws      int
	AvgMoves   float64
	LastPlayed time.Time
}

// ResultRecorder is implemented by stores that keep a history of finished games.
type ResultRecorder interface {
	RecordResult(r MatchResult) error
	Stats() ([]VariantStats, error)
	RecentResults(limit int) ([]MatchResult, error)
}

var _ ResultRecorder = (*SQLStore)(nil)

// RecordResult appends a finished game to the history.
func (s *SQLStore) RecordResult(r MatchResult) error {
	created := r.CreatedAt
	if created.IsZero() {
		created = s.now()
	}
	_, err := s.db.Exec(s.d.rebind(
		`INSERT INTO results (save_name, variant, winner, moves, created_at)
		 VALUES (?, ?, ?, ?, ?)`),
		r.SaveName, r.Variant, r.Winner, r.Moves, formatTime(created),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record result: %w", err)
	}
	return nil
}

// RecentResults returns the most recent finished games.
func (s *SQLStore) RecentResults(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(s.d.rebind(
		`SELECT id, save_name, variant, winner, moves, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var r MatchResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SaveName, &r.Variant, &r.Winner, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats aggregates the history per variant, sorted by variant.
func (s *SQLStore) Stats() ([]VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant,
		        COUNT(*),
		        SUM(CASE WHEN winner = 'A' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner = 'B' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner = 'draw' THEN 1 ELSE 0 END),
		        AVG(moves),
		        MAX(created_at)
		 FROM results
		 GROUP BY variant
		 ORDER BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	var stats []VariantStats
	for rows.Next() {
		var st VariantStats
		var lastPlayed any
		if err := rows.Scan(&st.Variant, &st.Games, &st.WinsA, &st.WinsB, &st.Draws, &st.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
