package player

import "context"

// Directory is the read side of the external player registry.
type Directory interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
}
