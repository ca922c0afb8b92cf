package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	Start(ctx context.Context, playerID, difficulty string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	Restart(ctx context.Context, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	Abandon(ctx context.Context, playerID string) error
	GetStats(ctx context.Context, playerID string) (*entity.Stats, error)
}

// NewRouter - routes the game API and the health check. Callers may mount more handlers on it.
func NewRouter(logger *slog.Logger, gameUseCase gameUseCase) *mux.Router {
	handlers := newGameHandlers(logger, gameUseCase)

	router := mux.NewRouter()
	router.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware(logger, handlers))
	api.Use(loggingMiddleware(logger))
	api.Use(sessionMiddleware(logger))
	api.HandleFunc("/game", handlers.StartGame).Methods(http.MethodPost)
	api.HandleFunc("/game", handlers.GetGame).Methods(http.MethodGet)
	api.HandleFunc("/game", handlers.Abandon).Methods(http.MethodDelete)
	api.HandleFunc("/game/turn", handlers.MakeTurn).Methods(http.MethodPost)
	api.HandleFunc("/game/restart", handlers.Restart).Methods(http.MethodPost)
	api.HandleFunc("/stats", handlers.GetStats).Methods(http.MethodGet)

	return router
}

// Start - serves handler on port until ctx is canceled, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
