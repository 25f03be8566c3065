// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for connectx.
package config

import (
	"errors"
	"fmt"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize     = 3
	MaxBoardSize     = 20
	MinConnectLength = 2
)

// ErrInvalidConfig is wrapped by every ValidationError.
var ErrInvalidConfig = errors.New("invalid configuration")

// GameConfig contains the immutable parameters of one game.
type GameConfig struct {
	Name          string     `yaml:"name" json:"name"`
	Width         int        `yaml:"width" json:"width"`
	Height        int        `yaml:"height" json:"height"`
	ConnectLength int        `yaml:"connect_length" json:"connect_length"`
	Cylindrical   bool       `yaml:"cylindrical" json:"cylindrical"`
	Difficulty    Difficulty `yaml:"difficulty" json:"difficulty"`
	Mode          Mode       `yaml:"mode" json:"mode"`
	PlayerA       string     `yaml:"player_a" json:"player_a"`
	PlayerB       string     `yaml:"player_b" json:"player_b"`
}

// Mode selects which sides are computer-controlled.
type Mode string

const (
	ModePvP Mode = "pvp" // two humans
	ModePvC Mode = "pvc" // human A vs computer B
	ModeCvC Mode = "cvc" // computer vs computer
)

// ParseMode converts a user string to a Mode. Empty input yields ModePvP.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModePvP, nil
	case ModePvP, ModePvC, ModeCvC:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("config: unknown mode %q (want pvp, pvc or cvc)", s)
	}
}

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePvP:
		return "Player vs Player"
	case ModePvC:
		return "Player vs Computer"
	case ModeCvC:
		return "Computer vs Computer"
	default:
		return "Unknown"
	}
}

// ValidationError describes why a configuration was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrInvalidConfig).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks board bounds, the run length and the enum fields.
// ConnectLength may not exceed the shorter board side.
func (c GameConfig) Validate() error {
	if c.Width < MinBoardSize || c.Width > MaxBoardSize {
		return &ValidationError{
			Field:   "width",
			Message: fmt.Sprintf("%d is outside %d..%d", c.Width, MinBoardSize, MaxBoardSize),
		}
	}
	if c.Height < MinBoardSize || c.Height > MaxBoardSize {
		return &ValidationError{
			Field:   "height",
			Message: fmt.Sprintf("%d is outside %d..%d", c.Height, MinBoardSize, MaxBoardSize),
		}
	}
	if c.ConnectLength < MinConnectLength {
		return &ValidationError{
			Field:   "connect_length",
			Message: fmt.Sprintf("%d is below %d", c.ConnectLength, MinConnectLength),
		}
	}
	if limit := min(c.Width, c.Height); c.ConnectLength > limit {
		return &ValidationError{
			Field:   "connect_length",
			Message: fmt.Sprintf("%d exceeds the shorter board side %d", c.ConnectLength, limit),
		}
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return &ValidationError{Field: "difficulty", Message: err.Error()}
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return &ValidationError{Field: "mode", Message: err.Error()}
	}
	return nil
}

// Normalized fills empty optional fields with defaults.
func (c GameConfig) Normalized() GameConfig {
	if c.Name == "" {
		c.Name = fmt.Sprintf("Custom %dx%d", c.Width, c.Height)
	}
	if c.Difficulty == "" {
		c.Difficulty = DifficultyHard
	}
	if c.Mode == "" {
		c.Mode = ModePvP
	}
	if c.PlayerA == "" {
		c.PlayerA = "Player 1"
	}
	if c.PlayerB == "" {
		c.PlayerB = "Player 2"
	}
	return c
}

// Summary returns a one-line description, e.g. "Classical 7x6 - 7x6 - connect4".
func (c GameConfig) Summary() string {
	s := fmt.Sprintf("%s - %dx%d - connect%d", c.Name, c.Width, c.Height, c.ConnectLength)
	if c.Cylindrical {
		s += " - cylindrical"
	}
	return s
}
