package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
)

const sessionCookie = "user_session"

type gameUseCase interface {
	Start(ctx context.Context, playerID, difficulty string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	Restart(ctx context.Context, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	Abandon(ctx context.Context, playerID string) error
	GetStats(ctx context.Context, playerID string) (*entity.Stats, error)
}

type handlerFunc func(ctx context.Context, playerID string, message *Message, bufrw *bufio.ReadWriter) error

// Server plays games over a WebSocket connection, one player per connection.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:turn"] = server.handleGameTurn
	server.handlers["game:restart"] = server.handleRestart
	server.handlers["game:get"] = server.handleGetGame
	server.handlers["game:leave"] = server.handleGameLeave
	server.handlers["stats"] = server.handleStats

	return server
}

// ServeHTTP - upgrades the connection to WebSocket and serves messages until the client leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	if req.Header.Get("Upgrade") != "websocket" {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	key := req.Header.Get("Sec-WebSocket-Key")
	if key == "" {
		http.Error(writer, "missing Sec-WebSocket-Key", http.StatusBadRequest)
		return
	}

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking", "error", http.StatusText(http.StatusInternalServerError))
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	conn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer conn.Close()

	cookie := that.sessionCookie(req)

	if err = writeHandshake(bufrw, key, cookie); err != nil {
		log.Error("failed to write handshake", "error", err)
		return
	}

	log.Info("WebSocket connection established", "playerID", cookie.Value)

	if err = that.handleMessages(req.Context(), cookie.Value, bufrw); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

func writeHandshake(bufrw *bufio.ReadWriter, key string, cookie *http.Cookie) error {
	response := "HTTP/1.1 101 Switching Protocols\r\n" +
		"Upgrade: websocket\r\n" +
		"Connection: Upgrade\r\n" +
		"Sec-WebSocket-Accept: " + pkg.GenerateAcceptKey(key) + "\r\n" +
		"Set-Cookie: " + cookie.String() + "\r\n\r\n"

	if _, err := bufrw.WriteString(response); err != nil {
		return fmt.Errorf("failed to write handshake: %w", err)
	}

	if err := bufrw.Flush(); err != nil {
		return fmt.Errorf("failed to flush handshake: %w", err)
	}

	return nil
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, playerID string, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleMessages", "playerID", playerID)

	for {
		reqBody, err := that.readRequest(bufrw)
		if errors.Is(err, ErrConnectionClosed) || errors.Is(err, io.EOF) {
			log.Info("WebSocket connection closed")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)

			if err = that.sendErrorResponse(bufrw, "", "malformed message"); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			if err = that.sendErrorResponse(bufrw, message.Action, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err = handler(ctx, playerID, &message, bufrw); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

// sessionCookie - returns the player's session cookie, creating one when missing.
func (that *Server) sessionCookie(req *http.Request) *http.Cookie {
	log := that.logger.With("method", "sessionCookie")

	cookie, err := req.Cookie(sessionCookie)
	if err == nil && cookie.Value != "" {
		log.Debug("session cookie found", "cookie", cookie.Value)
		return &http.Cookie{Name: sessionCookie, Value: cookie.Value, Path: "/"}
	}

	cookie = &http.Cookie{
		Name:     sessionCookie,
		Value:    pkg.GenerateNewSessionID(),
		Expires:  time.Now().Add(24 * time.Hour),
		Path:     "/",
		HttpOnly: true,
	}
	log.Info("session cookie not found, new one created", "cookie", cookie.Value)

	return cookie
}
