// Package unitofwork defines the transactional boundary shared by the
// scoring and standings use cases.
package unitofwork

import (
	"context"

	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
)

// Repositories is the set of stores a use case may touch.
type Repositories interface {
	Matches() match.Repository
	Balls() ball.Repository
	Scorecards() scorecard.Repository
	Tournaments() tournament.Repository
	Standings() tournament.StandingRepository
}

// UnitOfWork exposes non-transactional reads through Repositories and runs
// fn against a transactional view. If fn returns an error nothing it wrote
// is kept. Calling the outer Repositories from inside fn is not allowed.
type UnitOfWork interface {
	Repositories
	Do(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error
}
