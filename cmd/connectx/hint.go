package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hintCmd = &cobra.Command{
	Use:   "hint <save>",
	Short: "Suggest a move",
	Long: `Ask the computer which column it would play for the side to move.
The saved game is not changed.`,
	Args: cobra.ExactArgs(1),
	Run:  runHint,
}

func runHint(cmd *cobra.Command, args []string) {
	name := args[0]

	store := openStore()
	m := loadMatch(store, name)
	store.Close()

	if m.IsOver() {
		fail("game %q is over: %s", name, m.Message())
	}

	res := m.BestMove()
	if res.Column < 0 {
		fail("no column has space")
	}
	fmt.Printf("%s: column %d\n", m.CurrentLabel(), res.Column+1)
	if res.Depth > 0 {
		fmt.Printf("  score %d, depth %d, %d positions\n", res.Score, res.Depth, res.Nodes)
	}
}
