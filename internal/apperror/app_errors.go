package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")

	// ErrInvalidMove is joined with one of the move errors above whenever a move is rejected.
	ErrInvalidMove       = errors.New("invalid move")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrNoAvailableMoves  = errors.New("no available moves")
)
