package service

import (
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
)

type heuristicBot struct {
	fallback BotStrategy
}

// NewHeuristicBot wins when it can, blocks when it must, and otherwise plays at random.
func NewHeuristicBot(rnd pkg.Random) BotStrategy {
	return &heuristicBot{fallback: NewRandomBot(rnd)}
}

func (that *heuristicBot) SelectMove(board *entity.Board, marks entity.Marks) (int, error) {
	if board.IsFull() {
		return -1, apperror.ErrNoAvailableMoves
	}

	if cell, ok := completingCell(board, marks.Bot); ok {
		return cell, nil
	}

	if cell, ok := completingCell(board, marks.Player); ok {
		return cell, nil
	}

	return that.fallback.SelectMove(board, marks)
}

// completingCell finds the free cell that gives mark three in a line.
// Lines are scanned in WinLines order, each as ab->c, ac->b, bc->a.
func completingCell(board *entity.Board, mark string) (int, bool) {
	for _, line := range entity.WinLines {
		a, b, c := line[0], line[1], line[2]

		switch {
		case board[a] == mark && board[b] == mark && board[c] == entity.EmptyCell:
			return c, true
		case board[a] == mark && board[c] == mark && board[b] == entity.EmptyCell:
			return b, true
		case board[b] == mark && board[c] == mark && board[a] == entity.EmptyCell:
			return a, true
		}
	}

	return -1, false
}
