package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultGameConfig returns the classical 7x6 connect-four configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Name:          "Classical 7x6",
		Width:         7,
		Height:        6,
		ConnectLength: 4,
		Cylindrical:   false,
		Difficulty:    DifficultyHard,
		Mode:          ModePvP,
		PlayerA:       "Player 1",
		PlayerB:       "Player 2",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultClassicYAML
}
