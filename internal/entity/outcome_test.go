package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	marks := DefaultMarks()

	tests := []struct {
		name    string
		board   Board
		outcome Outcome
		cells   []int
	}{
		{
			name:    "empty board is in progress",
			board:   Board{},
			outcome: OutcomeInProgress,
		},
		{
			name: "player completes the top row",
			board: Board{
				PlayerX, PlayerX, PlayerX,
				PlayerO, PlayerO, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
			outcome: OutcomePlayerWin,
			cells:   []int{0, 1, 2},
		},
		{
			name: "bot completes the anti-diagonal",
			board: Board{
				PlayerX, PlayerX, PlayerO,
				EmptyCell, PlayerO, EmptyCell,
				PlayerO, EmptyCell, PlayerX,
			},
			outcome: OutcomeBotWin,
			cells:   []int{2, 4, 6},
		},
		{
			name: "full board without a line is a draw",
			board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerO, PlayerX, PlayerX,
			},
			outcome: OutcomeDraw,
		},
		{
			name: "full board with a line is a win, not a draw",
			board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerX,
			},
			outcome: OutcomePlayerWin,
			cells:   []int{0, 4, 8},
		},
		{
			name: "open board with marks is in progress",
			board: Board{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
			outcome: OutcomeInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: evaluating the board
			result := Evaluate(&tt.board, marks)

			// Then: the outcome and the matched line are reported
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.cells, result.WinningCells())
		})
	}
}

func TestEvaluate_SwappedMarks(t *testing.T) {
	// Given: a human playing O against a bot playing X
	marks := Marks{Player: PlayerO, Bot: PlayerX}
	board := Board{PlayerX, PlayerX, PlayerX}

	// Then: the completed X line belongs to the bot
	assert.Equal(t, OutcomeBotWin, Evaluate(&board, marks).Outcome)
}

func TestBoard_EmptyCells(t *testing.T) {
	board := Board{PlayerX, EmptyCell, PlayerO, EmptyCell}

	assert.Equal(t, []int{1, 3, 4, 5, 6, 7, 8}, board.EmptyCells())
	assert.False(t, board.IsFull())
}

func TestBoard_String(t *testing.T) {
	board := Board{PlayerX, EmptyCell, PlayerO}

	expected := " X | 1 | O \n---+---+---\n 3 | 4 | 5 \n---+---+---\n 6 | 7 | 8 "
	assert.Equal(t, expected, board.String())
}

func TestParseDifficulty(t *testing.T) {
	t.Run("Accepts every known token", func(t *testing.T) {
		for _, token := range []string{"easy", "medium", "hard"} {
			difficulty, err := ParseDifficulty(token)
			require.NoError(t, err)
			assert.Equal(t, Difficulty(token), difficulty)
		}
	})

	t.Run("Rejects unknown tokens instead of defaulting", func(t *testing.T) {
		for _, token := range []string{"", "impossible", "Hard", " easy"} {
			_, err := ParseDifficulty(token)
			assert.ErrorIs(t, err, apperror.ErrInvalidDifficulty, token)
		}
	})
}

func TestStats_Add(t *testing.T) {
	// Given: empty stats
	var stats Stats

	// When: adding one of every outcome
	stats.Add(OutcomePlayerWin)
	stats.Add(OutcomeBotWin)
	stats.Add(OutcomeBotWin)
	stats.Add(OutcomeDraw)
	stats.Add(OutcomeInProgress)

	// Then: non-terminal outcomes are not counted
	assert.Equal(t, Stats{Wins: 1, Losses: 2, Draws: 1, GamesPlayed: 4}, stats)
}
