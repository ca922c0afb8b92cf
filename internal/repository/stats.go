package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var ErrUnknownOutcome = errors.New("outcome is not terminal")

// StatsRepository counts finished games per player.
type StatsRepository interface {
	Increment(ctx context.Context, playerID string, outcome entity.Outcome) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Stats, error)
}

type dbStats struct {
	client *redis.Client
}

// NewStatsRepository - keeps counters in a Redis hash per player.
func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func statsKey(playerID string) string {
	return "stats:" + playerID
}

func (that *dbStats) Increment(ctx context.Context, playerID string, outcome entity.Outcome) error {
	field := outcome.Field()
	if field == "" {
		return fmt.Errorf("%w: %s", ErrUnknownOutcome, outcome)
	}

	pipe := that.client.TxPipeline()
	pipe.HIncrBy(ctx, statsKey(playerID), field, 1)
	pipe.HIncrBy(ctx, statsKey(playerID), "games_played", 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment stats: %w", err)
	}

	return nil
}

// GetByPlayerID - returns zero stats for a player who has not finished a game yet.
func (that *dbStats) GetByPlayerID(ctx context.Context, playerID string) (*entity.Stats, error) {
	values, err := that.client.HGetAll(ctx, statsKey(playerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := &entity.Stats{}
	counters := map[string]*int{
		"wins":         &stats.Wins,
		"losses":       &stats.Losses,
		"draws":        &stats.Draws,
		"games_played": &stats.GamesPlayed,
	}

	for field, target := range counters {
		raw, ok := values[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s counter: %w", field, err)
		}
	}

	return stats, nil
}
