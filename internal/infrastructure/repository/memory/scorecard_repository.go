package memory

import (
	"context"

	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
)

type ScorecardRepository struct {
	view view
}

func (r *ScorecardRepository) Get(_ context.Context, key scorecard.Key) (scorecard.Scorecard, bool, error) {
	var (
		item scorecard.Scorecard
		ok   bool
	)
	r.view.read(func() {
		item, ok = r.view.s.cards[key]
	})
	return item, ok, nil
}

func (r *ScorecardRepository) Upsert(_ context.Context, item scorecard.Scorecard) (scorecard.Scorecard, error) {
	key := item.Key()
	err := r.view.write(func() (func(), error) {
		s := r.view.s
		prev, exists := s.cards[key]
		if exists {
			item.ID = prev.ID
			item.CreatedAt = prev.CreatedAt
		}
		s.cards[key] = item
		if exists {
			return func() { s.cards[key] = prev }, nil
		}

		s.cardOrder[key.MatchID] = append(s.cardOrder[key.MatchID], key)
		return func() {
			delete(s.cards, key)
			order := s.cardOrder[key.MatchID]
			s.cardOrder[key.MatchID] = order[:len(order)-1]
		}, nil
	})
	if err != nil {
		return scorecard.Scorecard{}, err
	}
	return item, nil
}

func (r *ScorecardRepository) ListByMatch(_ context.Context, matchID string) ([]scorecard.Scorecard, error) {
	var out []scorecard.Scorecard
	r.view.read(func() {
		s := r.view.s
		keys := s.cardOrder[matchID]
		out = make([]scorecard.Scorecard, 0, len(keys))
		for _, key := range keys {
			out = append(out, s.cards[key])
		}
	})
	return out, nil
}
