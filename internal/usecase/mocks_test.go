package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, playerID string, game *entity.Game) error {
	args := that.Called(ctx, playerID, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	args := that.Called(ctx, playerID)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByPlayerID(ctx context.Context, playerID string) error {
	args := that.Called(ctx, playerID)
	return args.Error(0)
}

type mockStatsRepo struct {
	mock.Mock
}

func (that *mockStatsRepo) Increment(ctx context.Context, playerID string, outcome entity.Outcome) error {
	args := that.Called(ctx, playerID, outcome)
	return args.Error(0)
}

func (that *mockStatsRepo) GetByPlayerID(ctx context.Context, playerID string) (*entity.Stats, error) {
	args := that.Called(ctx, playerID)

	stats, _ := args.Get(0).(*entity.Stats)

	return stats, args.Error(1)
}
