package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
	"github.com/vovakirdan/connectx/internal/storage"
)

// loadMatch resumes the named save. Unknown names exit with a hint.
func loadMatch(store storage.Store, name string) *connectx.Match {
	snap, err := store.Load(name)
	if errors.Is(err, storage.ErrSaveNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no saved game named %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'connectx saves' to see saved games.")
		os.Exit(1)
	}
	if err != nil {
		fail("loading %q: %v", name, err)
	}

	m, err := connectx.ResumeMatch(snap, matchOptions()...)
	if err != nil {
		fail("resuming %q: %v", name, err)
	}
	return m
}

// storeMatch writes the match back under name and records the result once
// the game has ended, if the backend keeps a history.
func storeMatch(store storage.Store, name string, m *connectx.Match) {
	info, err := store.Save(name, m.Snapshot())
	if err != nil {
		fail("saving %q: %v", name, err)
	}
	logger.Debug("game saved", "name", info.Name, "id", info.ID)

	if !m.IsOver() {
		return
	}
	rec, ok := store.(storage.ResultRecorder)
	if !ok {
		return
	}
	err = rec.RecordResult(storage.MatchResult{
		SaveName:  info.Name,
		Variant:   m.Config().Summary(),
		Winner:    winnerName(m.Status()),
		Moves:     m.MoveCount(),
		CreatedAt: time.Now(),
	})
	if err != nil {
		logger.Warn("could not record result", "err", err)
	}
}

func winnerName(s core.Status) string {
	switch s {
	case core.StatusAWon:
		return "A"
	case core.StatusBWon:
		return "B"
	default:
		return "draw"
	}
}

// parseColumn converts a 1-based column argument to a 0-based index.
func parseColumn(arg string, cfg config.GameConfig) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("column must be a number, got %q", arg)
	}
	if n < 1 || n > cfg.Width {
		return 0, fmt.Errorf("column must be between 1 and %d, got %d", cfg.Width, n)
	}
	return n - 1, nil
}

func printMoves(m *connectx.Match, moves []core.MoveDescriptor, mover core.Player) {
	for _, mv := range moves {
		fmt.Printf("%s drops into column %d\n", m.Label(mover), mv.Column+1)
		mover = mover.Opponent()
	}
}

func printMatch(m *connectx.Match) {
	fmt.Print(renderer().Match(m))
}
