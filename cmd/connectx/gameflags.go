package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/registry"
)

// gameFlags are the board options shared by `new` and `configs save`.
type gameFlags struct {
	variant     string
	configPath  string
	savedConfig string
	name        string
	difficulty  string
	mode        string
	width       int
	height      int
	connect     int
	cylindrical bool
	playerA     string
	playerB     string
}

func (f *gameFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.variant, "variant", "", "Start from a built-in variant (see 'connectx variants')")
	fl.StringVar(&f.configPath, "config", "", "Path to a game config YAML")
	fl.StringVar(&f.savedConfig, "saved-config", "", "Start from a named configuration (see 'connectx configs list')")
	fl.StringVar(&f.name, "name", "", "Configuration name")
	fl.StringVar(&f.difficulty, "difficulty", "", "Computer strength: easy, medium, hard")
	fl.StringVar(&f.mode, "mode", "", "Players: pvp, pvc (computer plays O), cvc")
	fl.IntVar(&f.width, "width", 0, fmt.Sprintf("Board width (%d-%d)", config.MinBoardSize, config.MaxBoardSize))
	fl.IntVar(&f.height, "height", 0, fmt.Sprintf("Board height (%d-%d)", config.MinBoardSize, config.MaxBoardSize))
	fl.IntVar(&f.connect, "connect", 0, "Pieces in a row needed to win")
	fl.BoolVar(&f.cylindrical, "cylindrical", false, "Wrap rows around the board edges")
	fl.StringVar(&f.playerA, "player-a", "", "Name of the first player (X)")
	fl.StringVar(&f.playerB, "player-b", "", "Name of the second player (O)")
}

// build resolves the base configuration, applies explicit overrides and validates.
func (f *gameFlags) build(cmd *cobra.Command) (config.GameConfig, error) {
	var (
		cfg config.GameConfig
		err error
	)
	switch {
	case f.variant != "":
		cfg, err = registry.Create(f.variant)
	case f.savedConfig != "":
		var repo *config.Repository
		repo, err = configRepository()
		if err == nil {
			cfg, err = repo.Load(f.savedConfig)
		}
	default:
		cfg, err = config.Load(f.configPath)
	}
	if err != nil {
		return config.GameConfig{}, err
	}

	changed := func(name string) bool { return cmd.Flags().Changed(name) }
	if changed("name") {
		cfg.Name = f.name
	}
	if changed("width") {
		cfg.Width = f.width
	}
	if changed("height") {
		cfg.Height = f.height
	}
	if changed("connect") {
		cfg.ConnectLength = f.connect
	}
	if changed("cylindrical") {
		cfg.Cylindrical = f.cylindrical
	}
	if changed("player-a") {
		cfg.PlayerA = f.playerA
	}
	if changed("player-b") {
		cfg.PlayerB = f.playerB
	}
	if changed("mode") {
		mode, err := config.ParseMode(f.mode)
		if err != nil {
			return config.GameConfig{}, err
		}
		cfg.Mode = mode
	}
	if err := config.ApplyDifficulty(&cfg, f.difficulty); err != nil {
		return config.GameConfig{}, err
	}

	// Resized boards get a fresh default name
	if !changed("name") && (changed("width") || changed("height")) {
		cfg.Name = ""
	}
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}
