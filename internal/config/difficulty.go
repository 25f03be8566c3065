package config

import "fmt"

// Difficulty is the computer player's strength tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts a user string to a Difficulty.
// "normal" is accepted as an alias for medium. Empty input yields hard.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "":
		return DifficultyHard, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// SearchDepth returns the minimax depth for a difficulty.
// Easy returns 0: the computer picks a random open column.
func SearchDepth(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 4
	case DifficultyHard:
		return 6
	default:
		return 6
	}
}

// ApplyDifficulty sets the difficulty on cfg from a preset string.
// An empty preset leaves cfg unchanged.
func ApplyDifficulty(cfg *GameConfig, preset string) error {
	if preset == "" {
		return nil
	}
	d, err := ParseDifficulty(preset)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Difficulty = d
	return nil
}
