package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - returns an identifier for a new player session.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateGameID - returns an identifier for a new game.
func GenerateGameID() string {
	return uuid.NewString()
}
