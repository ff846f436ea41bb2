package game

import (
	"time"

	"github.com/Y02WK/JanggiGame/internal/janggi"
)

type GameState struct {
	ID        string
	Game      *janggi.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}
