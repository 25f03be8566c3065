package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/games/connectx"
	"github.com/vovakirdan/connectx/internal/storage"
)

var newFlags gameFlags

var newCmd = &cobra.Command{
	Use:   "new [save]",
	Short: "Start a new game",
	Long: `Start a new game and store it under a save name.

The board comes from --variant, --saved-config or --config (in that order),
falling back to the default configuration search. Size, rule and player
flags override the chosen base. Without a save name one is generated
from the current time.

Examples:
  connectx new
  connectx new friday --variant cylinder
  connectx new big --width 12 --height 8 --connect 5 --mode pvc --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	Run:  runNew,
}

func init() {
	newFlags.register(newCmd)
}

func runNew(cmd *cobra.Command, args []string) {
	cfg, err := newFlags.build(cmd)
	if err != nil {
		fail("%v", err)
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	name = storage.SaveName(name, time.Now())

	store := openStore()
	defer store.Close()

	if _, err := store.Load(name); err == nil {
		store.Close()
		fail("a game named %q already exists (delete it first)", name)
	} else if !errors.Is(err, storage.ErrSaveNotFound) {
		logger.Warn("could not check existing save", "name", name, "err", err)
	}

	m, err := connectx.NewMatch(cfg, matchOptions()...)
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	storeMatch(store, name, m)

	fmt.Printf("Started %q\n\n", name)
	printMatch(m)
	fmt.Println()
	if m.IsComputerTurn() {
		fmt.Printf("Run 'connectx auto %s' to let the computer move.\n", name)
	} else {
		fmt.Printf("Run 'connectx drop %s <column>' to play.\n", name)
	}
}
