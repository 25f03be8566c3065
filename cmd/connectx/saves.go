package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	Long:  `List saved games, most recently updated first.`,
	Args:  cobra.NoArgs,
	Run:   runSaves,
}

func runSaves(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	saves, err := store.List()
	if err != nil {
		store.Close()
		fail("listing saves: %v", err)
	}

	if len(saves) == 0 {
		fmt.Println("No saved games.")
		fmt.Println()
		fmt.Println("Run 'connectx new' to start one.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, s := range saves {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxNameLen, "Name", "Updated", "Game")
	fmt.Printf("  %-*s  %-16s  %s\n", maxNameLen, "----", "-------", "----")
	for _, s := range saves {
		fmt.Printf("  %-*s  %-16s  %s\n", maxNameLen, s.Name, s.UpdatedAt.Local().Format("2006-01-02 15:04"), s.Description)
	}
}
