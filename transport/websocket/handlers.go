package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
)

func (that *Server) handleNewGame(ctx context.Context, playerID string, msg *Message, bufrw *bufio.ReadWriter) error {
	var payloadReq RequestPayload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, "malformed payload")
	}

	game, err := that.gameUseCase.Start(ctx, playerID, payloadReq.Difficulty)

	return that.sendGame(bufrw, msg.Action, game, err)
}

func (that *Server) handleGameTurn(ctx context.Context, playerID string, msg *Message, bufrw *bufio.ReadWriter) error {
	var payloadReq RequestPayload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, "malformed payload")
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(bufrw, msg.Action, "cell is required")
	}

	game, err := that.gameUseCase.MakeTurn(ctx, playerID, *payloadReq.Cell)

	return that.sendGame(bufrw, msg.Action, game, err)
}

func (that *Server) handleRestart(ctx context.Context, playerID string, msg *Message, bufrw *bufio.ReadWriter) error {
	game, err := that.gameUseCase.Restart(ctx, playerID)

	return that.sendGame(bufrw, msg.Action, game, err)
}

func (that *Server) handleGetGame(ctx context.Context, playerID string, msg *Message, bufrw *bufio.ReadWriter) error {
	game, err := that.gameUseCase.GetGame(ctx, playerID)

	return that.sendGame(bufrw, msg.Action, game, err)
}

func (that *Server) handleGameLeave(ctx context.Context, playerID string, msg *Message, bufrw *bufio.ReadWriter) error {
	if err := that.gameUseCase.Abandon(ctx, playerID); err != nil {
		return that.sendUseCaseError(bufrw, msg.Action, err)
	}

	return that.sendMessage(bufrw, msg.Action, ResponsePayload{})
}

func (that *Server) handleStats(ctx context.Context, playerID string, msg *Message, bufrw *bufio.ReadWriter) error {
	stats, err := that.gameUseCase.GetStats(ctx, playerID)
	if err != nil {
		return that.sendUseCaseError(bufrw, msg.Action, err)
	}

	return that.sendMessage(bufrw, msg.Action, ResponsePayload{Stats: stats})
}

func (that *Server) sendGame(bufrw *bufio.ReadWriter, action string, game *entity.Game, err error) error {
	if err != nil {
		return that.sendUseCaseError(bufrw, action, err)
	}

	return that.sendMessage(bufrw, action, ResponsePayload{Game: game})
}

// sendUseCaseError reports rejected requests to the client and hides internal failures.
func (that *Server) sendUseCaseError(bufrw *bufio.ReadWriter, action string, err error) error {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrInvalidDifficulty),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, repository.ErrGameNotFound):
		return that.sendErrorResponse(bufrw, action, err.Error())
	default:
		that.logger.Error("request failed", "action", action, "error", err)
		return that.sendErrorResponse(bufrw, action, "internal error")
	}
}

func (that *Server) sendErrorResponse(bufrw *bufio.ReadWriter, action, errorMsg string) error {
	return that.sendMessage(bufrw, action, ResponsePayload{Error: errorMsg})
}
