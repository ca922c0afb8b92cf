package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
)

const sessionCookie = "user_session"

type sessionKey struct{}

// sessionMiddleware - attaches the player id from the session cookie, issuing a new cookie when missing.
func sessionMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With("method", "sessionMiddleware")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookie)
			if err != nil || cookie.Value == "" {
				cookie = &http.Cookie{
					Name:     sessionCookie,
					Value:    pkg.GenerateNewSessionID(),
					Expires:  time.Now().Add(24 * time.Hour),
					Path:     "/",
					HttpOnly: true,
				}
				http.SetCookie(w, cookie)
				log.Info("session cookie not found, new one created", "cookie", cookie.Value)
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func playerIDFromContext(ctx context.Context) string {
	playerID, _ := ctx.Value(sessionKey{}).(string)
	return playerID
}
