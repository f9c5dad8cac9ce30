package memory

import (
	"context"

	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
)

type TournamentRepository struct {
	view view
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	var (
		item tournament.Tournament
		ok   bool
	)
	r.view.read(func() {
		item, ok = r.view.s.tournaments[tournamentID]
	})
	return item, ok, nil
}

func (r *TournamentRepository) Create(_ context.Context, item tournament.Tournament) error {
	return r.view.write(func() (func(), error) {
		s := r.view.s
		if _, exists := s.tournaments[item.ID]; exists {
			return nil, errDuplicate("tournament", item.ID)
		}
		s.tournaments[item.ID] = item
		return func() { delete(s.tournaments, item.ID) }, nil
	})
}

func (r *TournamentRepository) GetGroup(_ context.Context, groupID string) (tournament.Group, bool, error) {
	var (
		item tournament.Group
		ok   bool
	)
	r.view.read(func() {
		item, ok = r.view.s.groups[groupID]
	})
	return item, ok, nil
}

func (r *TournamentRepository) CreateGroup(_ context.Context, item tournament.Group) error {
	return r.view.write(func() (func(), error) {
		s := r.view.s
		if _, exists := s.groups[item.ID]; exists {
			return nil, errDuplicate("group", item.ID)
		}
		s.groups[item.ID] = item
		s.groupOrder = append(s.groupOrder, item.ID)
		return func() {
			delete(s.groups, item.ID)
			s.groupOrder = s.groupOrder[:len(s.groupOrder)-1]
		}, nil
	})
}

func (r *TournamentRepository) ListGroups(_ context.Context, tournamentID string) ([]tournament.Group, error) {
	out := make([]tournament.Group, 0)
	r.view.read(func() {
		s := r.view.s
		for _, groupID := range s.groupOrder {
			if g := s.groups[groupID]; g.TournamentID == tournamentID {
				out = append(out, g)
			}
		}
	})
	return out, nil
}
