package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, playerID string, game *entity.Game) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

// GameManager runs one game per player, persisting it between requests.
// Operations of the same player are serialized within the process.
type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	statsRepos []statsRepo
	marks      entity.Marks
	rnd        pkg.Random

	playerLocks sync.Map
}

// NewGameManager - statsRepos are written in order and read with the first one preferred.
func NewGameManager(logger *slog.Logger, gameRepo gameRepo, marks entity.Marks, rnd pkg.Random, statsRepos ...statsRepo) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "gameManager"),
		gameRepo:   gameRepo,
		statsRepos: statsRepos,
		marks:      marks,
		rnd:        rnd,
	}
}

// Start begins a new game for the player, replacing any game in progress.
func (that *GameManager) Start(ctx context.Context, playerID, difficulty string) (*entity.Game, error) {
	defer that.lock(playerID)()

	game, err := that.gameRepo.GetByPlayerID(ctx, playerID)
	if errors.Is(err, repository.ErrGameNotFound) {
		game = entity.NewGame(pkg.GenerateGameID(), that.marks)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	controller := that.controller(game)
	if err = controller.Start(difficulty); err != nil {
		return nil, err
	}

	return that.save(ctx, playerID, controller)
}

// MakeTurn plays the human move and the bot reply. Rejected moves are not saved.
// The outcome of a finished game is counted only after the game is saved.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	defer that.lock(playerID)()

	game, err := that.GetGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	controller := that.controller(game)
	if err = controller.ApplyHumanMove(ctx, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	saved, err := that.save(ctx, playerID, controller)
	if err != nil {
		return nil, err
	}

	if saved.IsFinished() {
		that.recordOutcome(ctx, playerID, saved.Outcome)
	}

	return saved, nil
}

// Restart begins a new game with the difficulty of the player's last game.
func (that *GameManager) Restart(ctx context.Context, playerID string) (*entity.Game, error) {
	defer that.lock(playerID)()

	game, err := that.GetGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	controller := that.controller(game)
	if err = controller.Restart(); err != nil {
		return nil, err
	}

	return that.save(ctx, playerID, controller)
}

func (that *GameManager) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Abandon drops the player's stored game. An abandoned game is not counted.
func (that *GameManager) Abandon(ctx context.Context, playerID string) error {
	defer that.lock(playerID)()

	if err := that.gameRepo.DeleteByPlayerID(ctx, playerID); err != nil {
		return fmt.Errorf("failed to abandon game: %w", err)
	}

	that.logger.Info("game abandoned", "playerID", playerID)

	return nil
}

func (that *GameManager) GetStats(ctx context.Context, playerID string) (*entity.Stats, error) {
	return NewStatsRecorder(that.logger, playerID, that.statsRepos...).Load(ctx)
}

// controller works without a recorder; MakeTurn records outcomes once the game is saved.
func (that *GameManager) controller(game *entity.Game) *tictactoe.GameController {
	return tictactoe.NewGameController(that.logger, game, nil, that.rnd)
}

func (that *GameManager) recordOutcome(ctx context.Context, playerID string, outcome entity.Outcome) {
	recorder := NewStatsRecorder(that.logger, playerID, that.statsRepos...)

	if err := recorder.RecordOutcome(ctx, outcome); err != nil {
		that.logger.Error("failed to record outcome", "playerID", playerID, "outcome", outcome, "error", err)
	}
}

// lock holds the player's mutex until the returned func is called.
func (that *GameManager) lock(playerID string) func() {
	value, _ := that.playerLocks.LoadOrStore(playerID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}

func (that *GameManager) save(ctx context.Context, playerID string, controller *tictactoe.GameController) (*entity.Game, error) {
	game := controller.Game()

	if err := that.gameRepo.CreateOrUpdate(ctx, playerID, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}
