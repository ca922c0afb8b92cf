package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimaxBot_SelectMove(t *testing.T) {
	t.Run("Takes an immediate win instead of blocking", func(t *testing.T) {
		// Given: both sides can complete their row
		board := entity.Board{
			o, o, e,
			x, x, e,
			e, e, e,
		}

		// When: the hard bot moves
		cell, err := NewMinimaxBot().SelectMove(&board, marks)

		// Then: it completes its own row
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks when it cannot win", func(t *testing.T) {
		// Given: the human threatens the right column
		board := entity.Board{
			e, e, x,
			e, o, x,
			e, e, e,
		}

		cell, err := NewMinimaxBot().SelectMove(&board, marks)

		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})

	t.Run("Answers a corner opening with the centre", func(t *testing.T) {
		board := entity.Board{x}

		cell, err := NewMinimaxBot().SelectMove(&board, marks)

		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})

	t.Run("Breaks ties by the lowest index", func(t *testing.T) {
		// Given: an empty board where every opening draws under perfect play
		board := entity.Board{}

		// When: the bot opens
		cell, err := NewMinimaxBot().SelectMove(&board, marks)

		// Then: cell 0 is the first of the equally scored moves
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Leaves the board untouched", func(t *testing.T) {
		boards := []entity.Board{
			{},
			{x},
			{x, e, e, e, o, e, e, e, x},
			{o, o, e, x, x, e, e, e, e},
		}

		for _, board := range boards {
			before := board

			_, err := NewMinimaxBot().SelectMove(&board, marks)

			require.NoError(t, err)
			assert.Equal(t, before, board)
		}
	})

	t.Run("Fails on a full board without touching it", func(t *testing.T) {
		board := fullBoard()
		before := board

		_, err := NewMinimaxBot().SelectMove(&board, marks)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
		assert.Equal(t, before, board)
	})
}

// playOut alternates human and bot moves from board until the game ends. The human moves first.
func playOut(t *testing.T, board entity.Board, human, bot BotStrategy) entity.Outcome {
	t.Helper()

	humanMarks := entity.Marks{Player: marks.Bot, Bot: marks.Player}
	humanToMove := true

	for {
		if outcome := entity.Evaluate(&board, marks).Outcome; outcome.IsTerminal() {
			return outcome
		}

		var (
			cell int
			err  error
		)

		if humanToMove {
			cell, err = human.SelectMove(&board, humanMarks)
			require.NoError(t, err)
			board[cell] = marks.Player
		} else {
			cell, err = bot.SelectMove(&board, marks)
			require.NoError(t, err)
			board[cell] = marks.Bot
		}

		humanToMove = !humanToMove
	}
}

func TestMinimaxBot_NeverLoses(t *testing.T) {
	t.Run("Against the heuristic bot from every opening", func(t *testing.T) {
		for opening := range entity.BoardSize {
			// Given: the human has opened on a cell
			board := entity.Board{}
			board[opening] = marks.Player

			// When: the heuristic human and the hard bot play it out, the bot moving next
			bot := NewMinimaxBot()
			cell, err := bot.SelectMove(&board, marks)
			require.NoError(t, err)
			board[cell] = marks.Bot

			outcome := playOut(t, board, NewHeuristicBot(pkg.NewRandom()), bot)

			// Then: the human never wins
			assert.NotEqual(t, entity.OutcomePlayerWin, outcome, "opening %d", opening)
		}
	})

	t.Run("Against the random bot", func(t *testing.T) {
		for range 20 {
			outcome := playOut(t, entity.Board{}, NewRandomBot(pkg.NewRandom()), NewMinimaxBot())

			assert.NotEqual(t, entity.OutcomePlayerWin, outcome)
		}
	})

	t.Run("Against every possible human line", func(t *testing.T) {
		bot := NewMinimaxBot()

		var explore func(board entity.Board)
		explore = func(board entity.Board) {
			for _, cell := range board.EmptyCells() {
				next := board
				next[cell] = marks.Player

				switch entity.Evaluate(&next, marks).Outcome {
				case entity.OutcomePlayerWin:
					t.Fatalf("human won on board %v", next)
				case entity.OutcomeDraw:
					continue
				}

				reply, err := bot.SelectMove(&next, marks)
				require.NoError(t, err)
				next[reply] = marks.Bot

				if entity.Evaluate(&next, marks).Outcome == entity.OutcomeInProgress {
					explore(next)
				}
			}
		}

		explore(entity.Board{})
	})
}

func TestMinimaxBot_OptimalPlayDraws(t *testing.T) {
	// Given: an optimal human harness and the hard bot moving second
	// When: they play from the empty board
	outcome := playOut(t, entity.Board{}, NewMinimaxBot(), NewMinimaxBot())

	// Then: the game is drawn
	assert.Equal(t, entity.OutcomeDraw, outcome)
}
