package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour)

	// Given: a started game
	game := entity.NewGame("123", entity.DefaultMarks())
	game.Reset(entity.HardDifficulty)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, "player-1", game)

	// Then: no error should be returned, and the game expires with the session
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "game:player-1").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestGameRepository_GetByPlayerID(t *testing.T) {
	t.Run("GetByPlayerID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a finished game with a winning line
		move := 4
		game := entity.NewGame("123", entity.DefaultMarks())
		game.Reset(entity.MediumDifficulty)
		game.Board = entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerO}
		game.Status = entity.StatusFinished
		game.Outcome = entity.OutcomePlayerWin
		game.WinningLine = []int{0, 1, 2}
		game.LastBotMove = &move
		game.Turn = ""

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "player-1", game))

		// When: GetByPlayerID is called
		retrievedGame, err := gameRepo.GetByPlayerID(ctx, "player-1")

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game, retrievedGame)
	})

	t.Run("GetByPlayerID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: GetByPlayerID is called for a player without a game
		retrievedGame, err := gameRepo.GetByPlayerID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("GetByPlayerID_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)
		require.NoError(t, st.Storage.Set(ctx, "game:player-1", "{not json", 0).Err())

		_, err := gameRepo.GetByPlayerID(ctx, "player-1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrGameNotFound)
	})
}

func TestGameRepository_DeleteByPlayerID(t *testing.T) {
	t.Run("DeleteByPlayerID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "player-1", entity.NewGame("123", entity.DefaultMarks())))

		// When: DeleteByPlayerID is called
		err := gameRepo.DeleteByPlayerID(ctx, "player-1")

		// Then: the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByPlayerID(ctx, "player-1")
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByPlayerID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: DeleteByPlayerID is called with a player without a game
		err := gameRepo.DeleteByPlayerID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
