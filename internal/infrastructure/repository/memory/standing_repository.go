package memory

import (
	"context"

	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
)

type StandingRepository struct {
	view view
}

func (r *StandingRepository) Get(_ context.Context, tournamentID, teamID string) (tournament.Standing, bool, error) {
	var (
		item tournament.Standing
		ok   bool
	)
	r.view.read(func() {
		item, ok = r.view.s.standings[standingKey{tournamentID: tournamentID, teamID: teamID}]
	})
	return item, ok, nil
}

func (r *StandingRepository) Upsert(_ context.Context, item tournament.Standing) error {
	key := standingKey{tournamentID: item.TournamentID, teamID: item.TeamID}
	return r.view.write(func() (func(), error) {
		s := r.view.s
		prev, exists := s.standings[key]
		if exists {
			item.CreatedAt = prev.CreatedAt
			s.standings[key] = item
			return func() { s.standings[key] = prev }, nil
		}

		s.standings[key] = item
		s.standingOrder = append(s.standingOrder, key)
		return func() {
			delete(s.standings, key)
			s.standingOrder = s.standingOrder[:len(s.standingOrder)-1]
		}, nil
	})
}

func (r *StandingRepository) ListByTournament(_ context.Context, tournamentID string) ([]tournament.Standing, error) {
	return r.list(func(row tournament.Standing) bool {
		return row.TournamentID == tournamentID
	}), nil
}

func (r *StandingRepository) ListByGroup(_ context.Context, tournamentID, groupID string) ([]tournament.Standing, error) {
	return r.list(func(row tournament.Standing) bool {
		return row.TournamentID == tournamentID && row.GroupID == groupID
	}), nil
}

func (r *StandingRepository) list(keep func(tournament.Standing) bool) []tournament.Standing {
	out := make([]tournament.Standing, 0)
	r.view.read(func() {
		s := r.view.s
		for _, key := range s.standingOrder {
			if row := s.standings[key]; keep(row) {
				out = append(out, row)
			}
		}
	})
	return out
}
