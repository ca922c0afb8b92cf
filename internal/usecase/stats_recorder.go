package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type statsRepo interface {
	Increment(ctx context.Context, playerID string, outcome entity.Outcome) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Stats, error)
}

// StatsRecorder writes finished games of one player to every configured store.
type StatsRecorder struct {
	logger   *slog.Logger
	playerID string
	stores   []statsRepo
}

func NewStatsRecorder(logger *slog.Logger, playerID string, stores ...statsRepo) *StatsRecorder {
	return &StatsRecorder{
		logger:   logger.With("component", "statsRecorder", "playerID", playerID),
		playerID: playerID,
		stores:   stores,
	}
}

// RecordOutcome updates every store even if one of them fails; failures are joined.
func (that *StatsRecorder) RecordOutcome(ctx context.Context, outcome entity.Outcome) error {
	var errs []error

	for _, store := range that.stores {
		if err := store.Increment(ctx, that.playerID, outcome); err != nil {
			that.logger.Warn("failed to save stats", "outcome", outcome, "error", err)
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

// Load reads stats from the first store that answers.
func (that *StatsRecorder) Load(ctx context.Context) (*entity.Stats, error) {
	var errs []error

	for _, store := range that.stores {
		stats, err := store.GetByPlayerID(ctx, that.playerID)
		if err == nil {
			return stats, nil
		}

		that.logger.Warn("failed to load stats, trying next store", "error", err)
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return &entity.Stats{}, nil
	}

	return nil, fmt.Errorf("failed to load stats: %w", errors.Join(errs...))
}
