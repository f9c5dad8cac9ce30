package memory

import (
	"context"
	"sync"

	"github.com/umair050/cricketApp-sub000/internal/domain/player"
)

// PlayerDirectory is a local stand-in for the player registry.
type PlayerDirectory struct {
	mu      sync.RWMutex
	players map[string]player.Player
}

func NewPlayerDirectory(players []player.Player) *PlayerDirectory {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}
	return &PlayerDirectory{players: index}
}

func (r *PlayerDirectory) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	return p, ok, nil
}
