package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

// ParseDifficulty accepts exactly one of the three difficulty tokens.
func ParseDifficulty(value string) (Difficulty, error) {
	switch difficulty := Difficulty(value); difficulty {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, value)
	}
}
