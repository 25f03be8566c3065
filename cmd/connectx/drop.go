package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/games/connectx"
)

var dropCmd = &cobra.Command{
	Use:   "drop <save> <column>",
	Short: "Drop a piece into a column",
	Long: `Drop the current player's piece into a column, counted from 1 on the left.
In pvc games the computer answers right away.

Examples:
  connectx drop friday 4`,
	Args: cobra.ExactArgs(2),
	Run:  runDrop,
}

func runDrop(cmd *cobra.Command, args []string) {
	name := args[0]

	store := openStore()
	defer store.Close()

	m := loadMatch(store, name)
	col, err := parseColumn(args[1], m.Config())
	if err != nil {
		store.Close()
		fail("%v", err)
	}

	mover := m.NextPlayer()
	move, err := m.Drop(col)
	switch {
	case errors.Is(err, connectx.ErrGameOver):
		store.Close()
		fail("game %q is over: %s", name, m.Message())
	case errors.Is(err, connectx.ErrNotHumanTurn):
		store.Close()
		fail("it is the computer's turn, run 'connectx auto %s'", name)
	case err != nil:
		store.Close()
		fail("%v", err)
	}
	if !move.Valid {
		store.Close()
		fail("column %d is full", col+1)
	}
	fmt.Printf("%s drops into column %d\n", m.Label(mover), col+1)

	if !m.IsOver() {
		replies, err := m.RunComputer()
		if err != nil {
			store.Close()
			fail("computer move: %v", err)
		}
		printMoves(m, replies, mover.Opponent())
	}

	storeMatch(store, name, m)
	fmt.Println()
	printMatch(m)
}
