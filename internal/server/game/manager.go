package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Y02WK/JanggiGame/internal/janggi"
)

var ErrNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &GameState{
		ID:        id,
		Game:      janggi.NewGame(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.games[id] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

// Touch bumps the session's last-activity time after a committed move.
func (m *Manager) Touch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.games[id]; ok {
		g.UpdatedAt = time.Now()
	}
}
