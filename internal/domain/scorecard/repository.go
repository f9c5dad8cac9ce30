package scorecard

import "context"

// Repository describes scorecard persistence. ListByMatch returns cards in
// order of first involvement.
type Repository interface {
	Get(ctx context.Context, key Key) (Scorecard, bool, error)
	Upsert(ctx context.Context, item Scorecard) (Scorecard, error)
	ListByMatch(ctx context.Context, matchID string) ([]Scorecard, error)
}
