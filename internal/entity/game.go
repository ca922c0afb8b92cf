package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

const (
	StatusIdle     = "idle"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the single-player session state reported to callers after every move.
type Game struct {
	ID          string     `json:"id"`
	Board       Board      `json:"board"`
	Status      string     `json:"status"`
	Turn        string     `json:"player_turn"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	Marks       Marks      `json:"marks"`
	Outcome     Outcome    `json:"outcome"`
	WinningLine []int      `json:"winning_line,omitempty"`
	LastBotMove *int       `json:"last_bot_move,omitempty"`
}

func NewGame(id string, marks Marks) *Game {
	return &Game{
		ID:      id,
		Board:   Board{},
		Status:  StatusIdle,
		Marks:   marks,
		Outcome: OutcomeInProgress,
	}
}

// Reset clears the board for a fresh game at the given difficulty. The human moves first.
func (that *Game) Reset(difficulty Difficulty) {
	that.Board = Board{}
	that.Status = StatusOngoing
	that.Turn = that.Marks.Player
	that.Difficulty = difficulty
	that.Outcome = OutcomeInProgress
	that.WinningLine = nil
	that.LastBotMove = nil
}

// Place puts mark into cell and refreshes the outcome. Callers validate the move first.
func (that *Game) Place(mark string, cell int) Result {
	that.Board[cell] = mark

	result := Evaluate(&that.Board, that.Marks)
	that.Outcome = result.Outcome

	if result.Outcome.IsTerminal() {
		that.Status = StatusFinished
		that.Turn = ""
		that.WinningLine = result.WinningCells()

		return result
	}

	if mark == that.Marks.Player {
		that.Turn = that.Marks.Bot
	} else {
		that.Turn = that.Marks.Player
	}

	return result
}

// ValidateMove reports why mark may not play cell, or nil.
func (that *Game) ValidateMove(mark string, cell int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsIdle() bool {
	return that.Status == StatusIdle
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsIdle():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Clone returns a deep copy safe to hand to callers.
func (that *Game) Clone() *Game {
	clone := *that

	if that.WinningLine != nil {
		clone.WinningLine = append([]int(nil), that.WinningLine...)
	}

	if that.LastBotMove != nil {
		move := *that.LastBotMove
		clone.LastBotMove = &move
	}

	return &clone
}
