package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
)

// OutcomeRecorder receives every finished game, e.g. to keep win/loss/draw counters.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, outcome entity.Outcome) error
}

// GameController drives one single-player session: the human moves, then the bot replies.
// It is the only writer of the game's board.
type GameController struct {
	logger   *slog.Logger
	game     *entity.Game
	recorder OutcomeRecorder
	rnd      pkg.Random
}

func NewGameController(logger *slog.Logger, game *entity.Game, recorder OutcomeRecorder, rnd pkg.Random) *GameController {
	return &GameController{
		logger:   logger.With("component", "gameController", "gameID", game.ID),
		game:     game,
		recorder: recorder,
		rnd:      rnd,
	}
}

// Game returns a copy of the current session state.
func (that *GameController) Game() *entity.Game {
	return that.game.Clone()
}

// Start clears the board and begins a game at the given difficulty.
func (that *GameController) Start(difficulty string) error {
	parsed, err := entity.ParseDifficulty(difficulty)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.game.Reset(parsed)
	that.logger.Debug("game started", "difficulty", parsed)

	return nil
}

// Restart begins a new game with the difficulty of the previous one.
func (that *GameController) Restart() error {
	if that.game.Difficulty == "" {
		return fmt.Errorf("failed to restart game: %w", apperror.ErrGameIsNotStarted)
	}

	return that.Start(string(that.game.Difficulty))
}

// ApplyHumanMove marks cell for the human and, if the game goes on, lets the bot reply.
// A rejected move leaves the game untouched and wraps apperror.ErrInvalidMove.
func (that *GameController) ApplyHumanMove(ctx context.Context, cell int) error {
	if err := that.game.ValidateMove(that.game.Marks.Player, cell); err != nil {
		return invalidMove(err)
	}

	that.place(ctx, that.game.Marks.Player, cell)

	if that.game.IsFinished() {
		return nil
	}

	return that.ApplyBotMove(ctx)
}

// ApplyBotMove asks the active strategy for a cell and plays it.
func (that *GameController) ApplyBotMove(ctx context.Context) error {
	log := that.logger.With("method", "ApplyBotMove")

	if err := that.game.ConfirmOngoingState(); err != nil {
		return invalidMove(err)
	}

	if that.game.Turn != that.game.Marks.Bot {
		return invalidMove(apperror.ErrNotYourTurn)
	}

	strategy, err := service.NewBotStrategy(that.game.Difficulty, that.rnd)
	if err != nil {
		return fmt.Errorf("failed to select bot strategy: %w", err)
	}

	startedAt := time.Now()

	cell, err := strategy.SelectMove(&that.game.Board, that.game.Marks)
	if err != nil {
		return fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = that.game.ValidateMove(that.game.Marks.Bot, cell); err != nil {
		return fmt.Errorf("bot selected an illegal move: %w", err)
	}

	log.Debug("bot selected move", "difficulty", that.game.Difficulty, "cell", cell, "elapsed", time.Since(startedAt))

	that.game.LastBotMove = &cell
	that.place(ctx, that.game.Marks.Bot, cell)

	return nil
}

func (that *GameController) place(ctx context.Context, mark string, cell int) {
	if result := that.game.Place(mark, cell); result.Outcome.IsTerminal() {
		that.finish(ctx, result)
	}
}

func (that *GameController) finish(ctx context.Context, result entity.Result) {
	log := that.logger.With("method", "finish")

	log.Info("game finished", "outcome", result.Outcome, "winningLine", result.WinningCells())

	if that.recorder == nil {
		return
	}

	if err := that.recorder.RecordOutcome(ctx, result.Outcome); err != nil {
		log.Error("failed to record outcome", "outcome", result.Outcome, "error", err)
	}
}

func invalidMove(err error) error {
	if errors.Is(err, apperror.ErrInvalidMove) {
		return err
	}

	return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
}
