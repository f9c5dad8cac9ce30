package ball

import (
	"context"
	"errors"
)

var (
	// ErrOutOfOrder is returned when an append does not extend the top of the ledger.
	ErrOutOfOrder = errors.New("ball number does not follow ledger top")
	// ErrNotTop is returned when a pop targets anything but the top entry.
	ErrNotTop = errors.New("ball is not the ledger top")
)

// Repository is an append-only per-match ledger with LIFO removal. LockTop
// returns the current top ball number and holds it until the surrounding
// transaction ends, so the next number can be derived from it safely.
type Repository interface {
	LockTop(ctx context.Context, matchID string) (int, error)
	Append(ctx context.Context, item Ball) error
	Top(ctx context.Context, matchID string) (Ball, bool, error)
	PopTop(ctx context.Context, matchID string, ballNumber int) error
	Count(ctx context.Context, matchID string) (int, error)
	CountLegalByBowler(ctx context.Context, matchID, bowlerID string) (int, error)
	ListByMatch(ctx context.Context, matchID string) ([]Ball, error)
	ListRecent(ctx context.Context, matchID string, limit int) ([]Ball, error)
}
