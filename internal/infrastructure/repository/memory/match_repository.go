package memory

import (
	"context"
	"fmt"

	"github.com/umair050/cricketApp-sub000/internal/domain/match"
)

type MatchRepository struct {
	view view
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	var (
		item match.Match
		ok   bool
	)
	r.view.read(func() {
		item, ok = r.view.s.matches[matchID]
	})
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	return r.view.write(func() (func(), error) {
		s := r.view.s
		if _, exists := s.matches[item.ID]; exists {
			return nil, errDuplicate("match", item.ID)
		}
		s.matches[item.ID] = item
		s.matchOrder = append(s.matchOrder, item.ID)
		return func() {
			delete(s.matches, item.ID)
			s.matchOrder = s.matchOrder[:len(s.matchOrder)-1]
		}, nil
	})
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	return r.view.write(func() (func(), error) {
		s := r.view.s
		prev, exists := s.matches[item.ID]
		if !exists {
			return nil, fmt.Errorf("match %s does not exist", item.ID)
		}
		s.matches[item.ID] = item
		return func() {
			s.matches[item.ID] = prev
		}, nil
	})
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	out := make([]match.Match, 0)
	r.view.read(func() {
		s := r.view.s
		for _, matchID := range s.matchOrder {
			m := s.matches[matchID]
			if m.TournamentID == tournamentID && !m.IsDeleted {
				out = append(out, m)
			}
		}
	})
	return out, nil
}
