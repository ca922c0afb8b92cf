package service

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0
)

type minimaxBot struct{}

// NewMinimaxBot searches the full game tree and never loses.
// Scores are not discounted by depth, so a slow win ranks the same as a fast one.
func NewMinimaxBot() BotStrategy {
	return &minimaxBot{}
}

// SelectMove returns the lowest-index cell among those with the best score.
func (that *minimaxBot) SelectMove(board *entity.Board, marks entity.Marks) (int, error) {
	if board.IsFull() {
		return -1, apperror.ErrNoAvailableMoves
	}

	bestScore, bestMove := math.MinInt, -1

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		score := tryMove(board, cell, marks.Bot, func() int {
			return that.score(board, marks, false)
		})

		if score > bestScore {
			bestScore, bestMove = score, cell
		}
	}

	return bestMove, nil
}

func (that *minimaxBot) score(board *entity.Board, marks entity.Marks, botToMove bool) int {
	switch entity.Evaluate(board, marks).Outcome {
	case entity.OutcomeBotWin:
		return winScore
	case entity.OutcomePlayerWin:
		return lossScore
	case entity.OutcomeDraw:
		return drawScore
	}

	if botToMove {
		best := math.MinInt
		for cell := range board {
			if board[cell] == entity.EmptyCell {
				best = max(best, tryMove(board, cell, marks.Bot, func() int {
					return that.score(board, marks, false)
				}))
			}
		}

		return best
	}

	best := math.MaxInt
	for cell := range board {
		if board[cell] == entity.EmptyCell {
			best = min(best, tryMove(board, cell, marks.Player, func() int {
				return that.score(board, marks, true)
			}))
		}
	}

	return best
}

// tryMove places mark on cell for the duration of eval and always clears it again.
func tryMove(board *entity.Board, cell int, mark string, eval func() int) int {
	board[cell] = mark
	defer func() { board[cell] = entity.EmptyCell }()

	return eval()
}
