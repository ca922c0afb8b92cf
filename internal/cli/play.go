package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/spf13/cobra"
)

const cloudConnectTimeout = 2 * time.Second

var errInputClosed = errors.New("input closed before the game finished")

func newPlayCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play against the bot in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, err := entity.ParseDifficulty(difficulty); err != nil {
				return err
			}

			recorder, closeCloud := newTerminalRecorder(ctx, logger, conf)
			defer closeCloud()

			marks := entity.Marks{Player: conf.Game.PlayerMark, Bot: conf.Game.BotMark}
			game := entity.NewGame(pkg.GenerateGameID(), marks)
			controller := tictactoe.NewGameController(logger, game, recorder, pkg.NewRandom())

			return newTerminalGame(cmd.InOrStdin(), cmd.OutOrStdout(), controller).Run(ctx, difficulty)
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(entity.MediumDifficulty), "Bot difficulty: easy, medium, hard")

	return cmd
}

// newTerminalRecorder records to Redis when it is enabled and reachable, and always to the local file.
func newTerminalRecorder(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.StatsRecorder, func()) {
	log := logger.With("method", "newTerminalRecorder")
	local := repository.NewFileStatsRepository(conf.Stats.LocalPath)

	if conf.Stats.DisableCloud {
		return usecase.NewStatsRecorder(logger, terminalPlayerID, local), func() {}
	}

	connectCtx, cancel := context.WithTimeout(ctx, cloudConnectTimeout)
	defer cancel()

	client, err := storage.New(connectCtx, conf.Redis.GetRedisAddr())
	if err != nil {
		log.Warn("cloud stats unavailable, using local file only", "error", err)
		return usecase.NewStatsRecorder(logger, terminalPlayerID, local), func() {}
	}

	closeClient := func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}

	cloud := repository.NewStatsRepository(client)

	return usecase.NewStatsRecorder(logger, terminalPlayerID, cloud, local), closeClient
}

// terminalGame plays rounds on a line-oriented terminal until the player declines a rematch.
type terminalGame struct {
	in         *bufio.Scanner
	out        io.Writer
	controller *tictactoe.GameController
}

func newTerminalGame(in io.Reader, out io.Writer, controller *tictactoe.GameController) *terminalGame {
	return &terminalGame{
		in:         bufio.NewScanner(in),
		out:        out,
		controller: controller,
	}
}

func (that *terminalGame) Run(ctx context.Context, difficulty string) error {
	if err := that.controller.Start(difficulty); err != nil {
		return err
	}

	for {
		if err := that.playRound(ctx); err != nil {
			return err
		}

		fmt.Fprint(that.out, "Play again? [y/N]: ")

		answer, ok := that.readLine()
		if !ok || !strings.EqualFold(answer, "y") {
			return nil
		}

		if err := that.controller.Restart(); err != nil {
			return err
		}
	}
}

func (that *terminalGame) playRound(ctx context.Context) error {
	game := that.controller.Game()
	fmt.Fprintf(that.out, "You are %s, the %s bot is %s.\n", game.Marks.Player, game.Difficulty, game.Marks.Bot)

	for {
		fmt.Fprintf(that.out, "\n%s\n", game.Board.String())

		if game.IsFinished() {
			that.printOutcome(game)
			return nil
		}

		fmt.Fprint(that.out, "Your move (0-8): ")

		line, ok := that.readLine()
		if !ok {
			return errInputClosed
		}

		cell, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(that.out, "%q is not a cell number\n", line)
			continue
		}

		freeBefore := len(game.Board.EmptyCells())

		if err = that.controller.ApplyHumanMove(ctx, cell); err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) {
				fmt.Fprintf(that.out, "Invalid move: %v\n", err)
				continue
			}

			return err
		}

		game = that.controller.Game()
		if game.LastBotMove != nil && len(game.Board.EmptyCells()) == freeBefore-2 {
			fmt.Fprintf(that.out, "Bot plays %d\n", *game.LastBotMove)
		}
	}
}

func (that *terminalGame) printOutcome(game *entity.Game) {
	switch game.Outcome {
	case entity.OutcomePlayerWin:
		fmt.Fprintf(that.out, "You win! Line %v\n", game.WinningLine)
	case entity.OutcomeBotWin:
		fmt.Fprintf(that.out, "Bot wins. Line %v\n", game.WinningLine)
	case entity.OutcomeDraw:
		fmt.Fprintln(that.out, "Draw.")
	}
}

func (that *terminalGame) readLine() (string, bool) {
	if !that.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(that.in.Text()), true
}
