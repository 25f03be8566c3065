package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/storage"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <save>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

func runDelete(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	err := store.Delete(args[0])
	if errors.Is(err, storage.ErrSaveNotFound) {
		store.Close()
		fail("no saved game named %q", args[0])
	}
	if err != nil {
		store.Close()
		fail("deleting %q: %v", args[0], err)
	}
	fmt.Printf("Deleted %q\n", args[0])
}
