package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
)

// BotStrategy picks the cell the bot plays next. The board is left as it was received.
type BotStrategy interface {
	SelectMove(board *entity.Board, marks entity.Marks) (int, error)
}

// NewBotStrategy returns the strategy played at the given difficulty.
func NewBotStrategy(difficulty entity.Difficulty, rnd pkg.Random) (BotStrategy, error) {
	switch difficulty {
	case entity.EasyDifficulty:
		return NewRandomBot(rnd), nil
	case entity.MediumDifficulty:
		return NewHeuristicBot(rnd), nil
	case entity.HardDifficulty:
		return NewMinimaxBot(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

type randomBot struct {
	rnd pkg.Random
}

// NewRandomBot plays a uniformly random free cell.
func NewRandomBot(rnd pkg.Random) BotStrategy {
	return &randomBot{rnd: rnd}
}

func (that *randomBot) SelectMove(board *entity.Board, _ entity.Marks) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}
