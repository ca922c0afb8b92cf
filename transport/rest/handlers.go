package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
)

type startRequest struct {
	Difficulty string `json:"difficulty"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errMissingCell = errors.New("cell is required")

type gameHandlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func newGameHandlers(logger *slog.Logger, gameUseCase gameUseCase) *gameHandlers {
	return &gameHandlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

func (that *gameHandlers) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	game, err := that.gameUseCase.Start(r.Context(), playerIDFromContext(r.Context()), req.Difficulty)
	if err != nil {
		that.handleError(w, "StartGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, http.StatusBadRequest, errMissingCell)
		return
	}

	game, err := that.gameUseCase.MakeTurn(r.Context(), playerIDFromContext(r.Context()), *req.Cell)
	if err != nil {
		that.handleError(w, "MakeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) Restart(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.Restart(r.Context(), playerIDFromContext(r.Context()))
	if err != nil {
		that.handleError(w, "Restart", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), playerIDFromContext(r.Context()))
	if err != nil {
		that.handleError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := that.gameUseCase.Abandon(r.Context(), playerIDFromContext(r.Context())); err != nil {
		that.handleError(w, "Abandon", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *gameHandlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.gameUseCase.GetStats(r.Context(), playerIDFromContext(r.Context()))
	if err != nil {
		that.handleError(w, "GetStats", err)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

func (that *gameHandlers) handleError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidDifficulty):
		that.writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrGameIsNotStarted):
		that.writeError(w, http.StatusConflict, err)
	case errors.Is(err, repository.ErrGameNotFound):
		that.writeError(w, http.StatusNotFound, err)
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeError(w, http.StatusInternalServerError, errors.New(http.StatusText(http.StatusInternalServerError)))
	}
}

func (that *gameHandlers) writeError(w http.ResponseWriter, status int, err error) {
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *gameHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
