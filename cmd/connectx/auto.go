package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagAutoMoves int

var autoCmd = &cobra.Command{
	Use:   "auto <save>",
	Short: "Let the computer move",
	Long: `Play computer moves until a human player is to move or the game ends.
In cvc games this plays the whole game unless --moves limits it.

Examples:
  connectx auto bots
  connectx auto bots --moves 1`,
	Args: cobra.ExactArgs(1),
	Run:  runAuto,
}

func init() {
	autoCmd.Flags().IntVar(&flagAutoMoves, "moves", 0, "Stop after this many moves (0 = no limit)")
}

func runAuto(cmd *cobra.Command, args []string) {
	name := args[0]

	store := openStore()
	defer store.Close()

	m := loadMatch(store, name)
	if m.IsOver() {
		store.Close()
		fail("game %q is over: %s", name, m.Message())
	}
	if !m.IsComputerTurn() {
		store.Close()
		fail("it is %s's turn, run 'connectx drop %s <column>'", m.CurrentLabel(), name)
	}

	played := 0
	for m.IsComputerTurn() && (flagAutoMoves <= 0 || played < flagAutoMoves) {
		mover := m.NextPlayer()
		move, err := m.PlayComputer()
		if err != nil {
			store.Close()
			fail("computer move: %v", err)
		}
		fmt.Printf("%s drops into column %d\n", m.Label(mover), move.Column+1)
		played++
	}

	storeMatch(store, name, m)
	fmt.Println()
	printMatch(m)
}
