package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

// GameRepository keeps the current game of every player.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, playerID string, game *entity.Game) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - stores games as JSON; a zero ttl keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(playerID string) string {
	return "game:" + playerID
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, playerID string, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(playerID), gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal(response, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByPlayerID(ctx context.Context, playerID string) error {
	deleted, err := that.client.Del(ctx, gameKey(playerID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
