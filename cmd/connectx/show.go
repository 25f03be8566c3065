package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagShowJSON bool

var showCmd = &cobra.Command{
	Use:   "show <save>",
	Short: "Print a saved game",
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowJSON, "json", false, "Print the raw snapshot as JSON")
}

func runShow(cmd *cobra.Command, args []string) {
	store := openStore()
	m := loadMatch(store, args[0])
	store.Close()

	if flagShowJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m.Snapshot()); err != nil {
			fail("encoding snapshot: %v", err)
		}
		return
	}

	printMatch(m)
	fmt.Printf("Moves played: %d\n", m.MoveCount())
}
