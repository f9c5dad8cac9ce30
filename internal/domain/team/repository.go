package team

import "context"

// Directory is the read side of the external team registry.
type Directory interface {
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
