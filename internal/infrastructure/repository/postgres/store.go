package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
)

// Store exposes the scoring repositories over a connection pool. Do runs a
// callback in one database transaction.
type Store struct {
	db *sqlx.DB
}

var _ unitofwork.UnitOfWork = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Matches() match.Repository { return &MatchRepository{db: s.db} }
func (s *Store) Balls() ball.Repository { return &BallRepository{db: s.db} }
func (s *Store) Scorecards() scorecard.Repository { return &ScorecardRepository{db: s.db} }
func (s *Store) Tournaments() tournament.Repository { return &TournamentRepository{db: s.db} }
func (s *Store) Standings() tournament.StandingRepository { return &StandingRepository{db: s.db} }

func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, tx unitofwork.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, txRepositories{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type txRepositories struct {
	tx *sqlx.Tx
}

func (r txRepositories) Matches() match.Repository { return &MatchRepository{db: r.tx} }
func (r txRepositories) Balls() ball.Repository { return &BallRepository{db: r.tx} }
func (r txRepositories) Scorecards() scorecard.Repository { return &ScorecardRepository{db: r.tx} }
func (r txRepositories) Tournaments() tournament.Repository { return &TournamentRepository{db: r.tx} }
func (r txRepositories) Standings() tournament.StandingRepository { return &StandingRepository{db: r.tx} }
