package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should be finished
		assert.True(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: it should be ongoing
		assert.True(t, game.IsOngoing())
	})

	t.Run("IsIdle returns true for a new game", func(t *testing.T) {
		// Given: a freshly created game
		game := NewGame("123", DefaultMarks())

		// Then: it should be idle
		assert.True(t, game.IsIdle())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is idle", func(t *testing.T) {
		game := &Game{Status: StatusIdle}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	move := 4
	game := &Game{
		Board:       Board{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO},
		Status:      StatusFinished,
		Marks:       DefaultMarks(),
		Outcome:     OutcomePlayerWin,
		WinningLine: []int{0, 1, 2},
		LastBotMove: &move,
	}

	// When: resetting it
	game.Reset(HardDifficulty)

	// Then: the board is empty and the human moves first
	assert.Equal(t, Board{}, game.Board)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Equal(t, PlayerX, game.Turn)
	assert.Equal(t, HardDifficulty, game.Difficulty)
	assert.Equal(t, OutcomeInProgress, game.Outcome)
	assert.Nil(t, game.WinningLine)
	assert.Nil(t, game.LastBotMove)
}

func TestGame_Place(t *testing.T) {
	t.Run("Switches the turn while the game is open", func(t *testing.T) {
		// Given: a started game
		game := NewGame("123", DefaultMarks())
		game.Reset(EasyDifficulty)

		// When: the human places a mark
		result := game.Place(PlayerX, 0)

		// Then: the bot is on turn
		expectedGame := &Game{
			ID:         "123",
			Board:      Board{PlayerX, "", "", "", "", "", "", "", ""},
			Status:     StatusOngoing,
			Turn:       PlayerO,
			Difficulty: EasyDifficulty,
			Marks:      DefaultMarks(),
			Outcome:    OutcomeInProgress,
		}
		assert.Equal(t, OutcomeInProgress, result.Outcome)
		require.Equal(t, expectedGame, game)
	})

	t.Run("Finishes the game on a completed line", func(t *testing.T) {
		// Given: a bot about to complete the middle column
		game := NewGame("123", DefaultMarks())
		game.Reset(HardDifficulty)
		game.Board = Board{
			PlayerX, PlayerO, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			PlayerX, EmptyCell, EmptyCell,
		}
		game.Turn = PlayerO

		// When: the bot plays cell 7
		result := game.Place(PlayerO, 7)

		// Then: the bot wins along the middle column
		assert.Equal(t, OutcomeBotWin, result.Outcome)
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, OutcomeBotWin, game.Outcome)
		assert.Equal(t, []int{1, 4, 7}, game.WinningLine)
		assert.Empty(t, game.Turn)
	})
}

func TestGame_ValidateMove(t *testing.T) {
	newStartedGame := func() *Game {
		game := NewGame("123", DefaultMarks())
		game.Reset(EasyDifficulty)
		return game
	}

	t.Run("Accepts a free cell on the player's turn", func(t *testing.T) {
		assert.NoError(t, newStartedGame().ValidateMove(PlayerX, 4))
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		game := newStartedGame()
		game.Place(PlayerX, 4)
		game.Turn = PlayerX

		assert.ErrorIs(t, game.ValidateMove(PlayerX, 4), apperror.ErrCellOccupied)
	})

	t.Run("Rejects playing out of turn", func(t *testing.T) {
		assert.ErrorIs(t, newStartedGame().ValidateMove(PlayerO, 1), apperror.ErrNotYourTurn)
	})

	t.Run("Rejects a cell greater than the range", func(t *testing.T) {
		assert.ErrorIs(t, newStartedGame().ValidateMove(PlayerX, 20), apperror.ErrInvalidCell)
	})

	t.Run("Rejects a negative cell", func(t *testing.T) {
		assert.ErrorIs(t, newStartedGame().ValidateMove(PlayerX, -1), apperror.ErrInvalidCell)
	})

	t.Run("Rejects moves before the game starts", func(t *testing.T) {
		game := NewGame("123", DefaultMarks())

		assert.ErrorIs(t, game.ValidateMove(PlayerX, 0), apperror.ErrGameIsNotStarted)
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with a winning line and a bot move
	move := 2
	game := &Game{ID: "1", WinningLine: []int{0, 1, 2}, LastBotMove: &move}

	// When: cloning and mutating the clone
	clone := game.Clone()
	clone.WinningLine[0] = 8
	*clone.LastBotMove = 5
	clone.Board[0] = PlayerX

	// Then: the original is untouched
	assert.Equal(t, []int{0, 1, 2}, game.WinningLine)
	assert.Equal(t, 2, *game.LastBotMove)
	assert.Equal(t, EmptyCell, game.Board[0])
}
