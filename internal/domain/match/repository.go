package match

import "context"

// Repository describes match persistence needs from use cases.
// ListByTournament leaves out soft-deleted matches.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, item Match) error
	ListByTournament(ctx context.Context, tournamentID string) ([]Match, error)
}
