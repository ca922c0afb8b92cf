package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solo/transport/rest"
	"github.com/rocketscienceinc/tictactoe-solo/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the HTTP application until SIGINT/SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameUseCase := newGameManager(logger, conf, redisStorage, pkg.NewRandom())

	router := rest.NewRouter(logger, gameUseCase)
	router.Handle("/ws", websocket.New(logger, gameUseCase)).Methods(http.MethodGet)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newGameManager - wires the session service. Stats go to Redis first unless DisableCloud is set, and always to the local file.
func newGameManager(logger *slog.Logger, conf *config.Config, client *redis.Client, rnd pkg.Random) *usecase.GameManager {
	gameRepo := repository.NewGameRepository(client, conf.Game.SessionTTL)
	localStats := repository.NewFileStatsRepository(conf.Stats.LocalPath)
	marks := entity.Marks{Player: conf.Game.PlayerMark, Bot: conf.Game.BotMark}

	if conf.Stats.DisableCloud {
		return usecase.NewGameManager(logger, gameRepo, marks, rnd, localStats)
	}

	cloudStats := repository.NewStatsRepository(client)

	return usecase.NewGameManager(logger, gameRepo, marks, rnd, cloudStats, localStats)
}
