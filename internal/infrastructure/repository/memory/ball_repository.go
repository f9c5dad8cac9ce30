package memory

import (
	"context"
	"fmt"

	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
)

// BallRepository stores each match ledger as a slice; its length is the
// ledger top.
type BallRepository struct {
	view view
}

// LockTop reads the ledger length. Transactions already hold the store lock.
func (r *BallRepository) LockTop(ctx context.Context, matchID string) (int, error) {
	return r.Count(ctx, matchID)
}

func (r *BallRepository) Append(_ context.Context, item ball.Ball) error {
	return r.view.write(func() (func(), error) {
		s := r.view.s
		ledger := s.balls[item.MatchID]
		if item.BallNumber != len(ledger)+1 {
			return nil, fmt.Errorf("%w: got %d, top is %d", ball.ErrOutOfOrder, item.BallNumber, len(ledger))
		}
		s.balls[item.MatchID] = append(ledger, item)
		return func() {
			s.balls[item.MatchID] = s.balls[item.MatchID][:item.BallNumber-1]
		}, nil
	})
}

func (r *BallRepository) Top(_ context.Context, matchID string) (ball.Ball, bool, error) {
	var (
		item ball.Ball
		ok   bool
	)
	r.view.read(func() {
		ledger := r.view.s.balls[matchID]
		if len(ledger) > 0 {
			item, ok = ledger[len(ledger)-1], true
		}
	})
	return item, ok, nil
}

func (r *BallRepository) PopTop(_ context.Context, matchID string, ballNumber int) error {
	return r.view.write(func() (func(), error) {
		s := r.view.s
		ledger := s.balls[matchID]
		if len(ledger) == 0 || ledger[len(ledger)-1].BallNumber != ballNumber {
			return nil, fmt.Errorf("%w: ball %d", ball.ErrNotTop, ballNumber)
		}
		top := ledger[len(ledger)-1]
		s.balls[matchID] = ledger[:len(ledger)-1]
		return func() {
			s.balls[matchID] = append(s.balls[matchID], top)
		}, nil
	})
}

func (r *BallRepository) Count(_ context.Context, matchID string) (int, error) {
	var count int
	r.view.read(func() {
		count = len(r.view.s.balls[matchID])
	})
	return count, nil
}

func (r *BallRepository) CountLegalByBowler(_ context.Context, matchID, bowlerID string) (int, error) {
	var count int
	r.view.read(func() {
		for _, item := range r.view.s.balls[matchID] {
			if item.BowlerID == bowlerID && item.IsLegal {
				count++
			}
		}
	})
	return count, nil
}

func (r *BallRepository) ListByMatch(_ context.Context, matchID string) ([]ball.Ball, error) {
	var out []ball.Ball
	r.view.read(func() {
		out = append([]ball.Ball(nil), r.view.s.balls[matchID]...)
	})
	return out, nil
}

func (r *BallRepository) ListRecent(_ context.Context, matchID string, limit int) ([]ball.Ball, error) {
	out := make([]ball.Ball, 0, max(limit, 0))
	r.view.read(func() {
		ledger := r.view.s.balls[matchID]
		for i := len(ledger) - 1; i >= 0 && len(out) < limit; i-- {
			out = append(out, ledger[i])
		}
	})
	return out, nil
}
