package tournament

import "context"

// Repository describes tournament and group persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	Create(ctx context.Context, item Tournament) error
	GetGroup(ctx context.Context, groupID string) (Group, bool, error)
	CreateGroup(ctx context.Context, item Group) error
	ListGroups(ctx context.Context, tournamentID string) ([]Group, error)
}

// StandingRepository persists points table rows. List methods return rows in
// creation order.
type StandingRepository interface {
	Get(ctx context.Context, tournamentID, teamID string) (Standing, bool, error)
	Upsert(ctx context.Context, item Standing) error
	ListByTournament(ctx context.Context, tournamentID string) ([]Standing, error)
	ListByGroup(ctx context.Context, tournamentID, groupID string) ([]Standing, error)
}
