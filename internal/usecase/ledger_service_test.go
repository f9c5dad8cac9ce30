package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	"github.com/umair050/cricketApp-sub000/internal/infrastructure/repository/memory"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
)

func TestLedgerService_AppendThenUndoRestoresScorecards(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createFriendly(t)

	for _, in := range []DeliveryInput{
		delivery(ball.OutcomeDot, 0, 0),
		delivery(ball.OutcomeSingle, 1, 0),
	} {
		if _, err := env.ledger.AppendBall(ctx, m.ID, in); err != nil {
			t.Fatalf("append prefix ball: %v", err)
		}
	}
	before, err := env.store.Scorecards().ListByMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list scorecards: %v", err)
	}
	want := cardStats(before)

	caught := delivery(ball.OutcomeWicket, 0, 0)
	caught.IsWicket = true
	caught.WicketType = ball.WicketCaught
	caught.FielderID = "kch-kings-wk-1"
	sequence := []DeliveryInput{
		delivery(ball.OutcomeFour, 4, 0),
		delivery(ball.OutcomeWide, 0, 1),
		caught,
		delivery(ball.OutcomeSix, 6, 0),
	}
	for _, in := range sequence {
		if _, err := env.ledger.AppendBall(ctx, m.ID, in); err != nil {
			t.Fatalf("append ball: %v", err)
		}
	}

	for wantNumber := 6; wantNumber >= 3; wantNumber-- {
		removed, err := env.ledger.UndoLastBall(ctx, m.ID)
		if err != nil {
			t.Fatalf("undo: %v", err)
		}
		if removed.BallNumber != wantNumber {
			t.Fatalf("unexpected undone ball: got=%d want=%d", removed.BallNumber, wantNumber)
		}
	}

	after, err := env.store.Scorecards().ListByMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list scorecards: %v", err)
	}
	for key, card := range cardStats(after) {
		prior, existed := want[key]
		if !existed {
			if !card.IsEmpty() {
				t.Fatalf("card created during sequence not zeroed: %+v", card)
			}
			continue
		}
		if card != prior {
			t.Fatalf("card %s not restored:\n got=%+v\nwant=%+v", key.PlayerID, card, prior)
		}
	}
	if count, _ := env.store.Balls().Count(ctx, m.ID); count != 2 {
		t.Fatalf("expected 2 balls left, got %d", count)
	}
}

func TestLedgerService_UndoOnEmptyLedger(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createFriendly(t)

	_, err := env.ledger.UndoLastBall(ctx, m.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	cards, _ := env.store.Scorecards().ListByMatch(ctx, m.ID)
	if len(cards) != 0 {
		t.Fatalf("expected no scorecards, got %d", len(cards))
	}
}

func TestLedgerService_FirstBallMarksMatchLive(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createFriendly(t)

	stored, err := env.ledger.AppendBall(ctx, m.ID, delivery(ball.OutcomeDouble, 2, 0))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if stored.BallNumber != 1 || !stored.IsLegal || !stored.CreatedAt.Equal(testNow) {
		t.Fatalf("unexpected stored ball: %+v", stored)
	}

	got, err := env.matches.GetMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if got.Status != match.StatusLive {
		t.Fatalf("expected live match, got %s", got.Status)
	}
}

func TestLedgerService_AppendBallRejects(t *testing.T) {
	t.Parallel()

	wicketWithoutFlag := delivery(ball.OutcomeWicket, 0, 0)
	strangerBatting := delivery(ball.OutcomeDot, 0, 0)
	strangerBatting.BattingTeamID = "isb-united"
	unknownBowler := delivery(ball.OutcomeDot, 0, 0)
	unknownBowler.BowlerID = "nobody"
	negative := delivery(ball.OutcomeSingle, -1, 0)

	tests := []struct {
		name      string
		input     DeliveryInput
		targetErr error
	}{
		{name: "wicket outcome without wicket flag", input: wicketWithoutFlag, targetErr: ErrInvalidInput},
		{name: "team not in match", input: strangerBatting, targetErr: ErrInvalidInput},
		{name: "unknown bowler", input: unknownBowler, targetErr: ErrNotFound},
		{name: "negative runs", input: negative, targetErr: ball.ErrNegativeRuns},
		{name: "bad outcome", input: delivery("googly", 0, 0), targetErr: ball.ErrInvalidOutcome},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			env := newTestEnv(t)
			m := env.createFriendly(t)

			_, err := env.ledger.AppendBall(ctx, m.ID, tc.input)
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
			if count, _ := env.store.Balls().Count(ctx, m.ID); count != 0 {
				t.Fatalf("expected empty ledger, got %d", count)
			}
		})
	}
}

func TestLedgerService_ClosedMatchRejectsWrites(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createFriendly(t)
	if _, err := env.ledger.AppendBall(ctx, m.ID, delivery(ball.OutcomeSingle, 1, 0)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := env.matches.UpdateMatchResult(ctx, m.ID, MatchResultInput{Status: match.StatusCancelled}); err != nil {
		t.Fatalf("cancel match: %v", err)
	}

	if _, err := env.ledger.AppendBall(ctx, m.ID, delivery(ball.OutcomeDot, 0, 0)); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on append, got %v", err)
	}
	if _, err := env.ledger.UndoLastBall(ctx, m.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on undo, got %v", err)
	}
}

func TestLedgerService_ConcurrentAppendsAreContiguous(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createFriendly(t)

	const deliveries = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []int
	)
	for range deliveries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stored, err := env.ledger.AppendBall(ctx, m.ID, delivery(ball.OutcomeDot, 0, 0))
			if err != nil {
				t.Errorf("append: %v", err)
				return
			}
			mu.Lock()
			numbers = append(numbers, stored.BallNumber)
			mu.Unlock()
		}()
	}
	wg.Wait()

	slices.Sort(numbers)
	for i, n := range numbers {
		if n != i+1 {
			t.Fatalf("ball numbers not contiguous: %v", numbers)
		}
	}

	bowler, ok, err := env.store.Scorecards().Get(ctx, scorecard.Key{MatchID: m.ID, PlayerID: "kch-kings-bowl-1", TeamID: "kch-kings"})
	if err != nil || !ok {
		t.Fatalf("get bowler card: ok=%v err=%v", ok, err)
	}
	if bowler.OversBowled != 1.2 {
		t.Fatalf("expected 1.2 overs, got %v", bowler.OversBowled)
	}
}

func TestLedgerService_CreditsFielderOnBowlingSide(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createFriendly(t)

	runOut := delivery(ball.OutcomeWicket, 1, 0)
	runOut.IsWicket = true
	runOut.WicketType = ball.WicketRunOut
	runOut.FielderID = "kch-kings-wk-1"
	if _, err := env.ledger.AppendBall(ctx, m.ID, runOut); err != nil {
		t.Fatalf("append: %v", err)
	}

	fielder, ok, _ := env.store.Scorecards().Get(ctx, scorecard.Key{MatchID: m.ID, PlayerID: "kch-kings-wk-1", TeamID: "kch-kings"})
	if !ok || fielder.RunOuts != 1 || fielder.Catches != 0 {
		t.Fatalf("unexpected fielder card: ok=%v %+v", ok, fielder)
	}
	bowler, _, _ := env.store.Scorecards().Get(ctx, scorecard.Key{MatchID: m.ID, PlayerID: "kch-kings-bowl-1", TeamID: "kch-kings"})
	if bowler.Wickets != 1 || bowler.RunsConceded != 1 {
		t.Fatalf("unexpected bowler card: %+v", bowler)
	}
	batsman, _, _ := env.store.Scorecards().Get(ctx, scorecard.Key{MatchID: m.ID, PlayerID: "lhr-lions-bat-1", TeamID: "lhr-lions"})
	if !batsman.IsOut || batsman.DismissalType != ball.WicketRunOut || batsman.Runs != 1 {
		t.Fatalf("unexpected batsman card: %+v", batsman)
	}
}

// racingBalls lets another writer take the next ball number between LockTop
// and Append, the way a second instance would without the head lock.
type racingBalls struct {
	ball.Repository
}

func (r racingBalls) Append(ctx context.Context, item ball.Ball) error {
	rival := item
	rival.BatsmanID = "lhr-lions-bat-2"
	if err := r.Repository.Append(ctx, rival); err != nil {
		return err
	}
	return r.Repository.Append(ctx, item)
}

type racingRepos struct {
	unitofwork.Repositories
}

func (r racingRepos) Balls() ball.Repository { return racingBalls{Repository: r.Repositories.Balls()} }

type racingUnitOfWork struct {
	*memory.Store
}

func (u racingUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, tx unitofwork.Repositories) error) error {
	return u.Store.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		return fn(ctx, racingRepos{Repositories: tx})
	})
}

func TestLedgerService_LostRaceIsConflict(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createFriendly(t)

	ledger := NewLedgerService(
		racingUnitOfWork{Store: env.store},
		memory.NewPlayerDirectory(memory.SeedPlayers()),
		NewScorecardAggregator(&sequenceIDGenerator{prefix: "card"}),
		nil,
		logging.NewNop(),
	)

	_, err := ledger.AppendBall(ctx, m.ID, delivery(ball.OutcomeSingle, 1, 0))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if !errors.Is(err, ball.ErrOutOfOrder) {
		t.Fatalf("expected ledger cause to be kept, got %v", err)
	}
	if count, _ := env.store.Balls().Count(ctx, m.ID); count != 0 {
		t.Fatalf("failed append left %d balls behind", count)
	}
}

func TestLedgerConflict(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{name: "out of order", err: fmt.Errorf("append ball=3: %w", ball.ErrOutOfOrder), conflict: true},
		{name: "not top", err: fmt.Errorf("remove ball=3: %w", ball.ErrNotTop), conflict: true},
		{name: "storage failure", err: errors.New("connection reset"), conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledgerConflict(tt.err)
			if errors.Is(got, ErrConflict) != tt.conflict {
				t.Fatalf("ledgerConflict(%v) conflict=%v want=%v", tt.err, errors.Is(got, ErrConflict), tt.conflict)
			}
			if !errors.Is(got, tt.err) {
				t.Fatalf("cause lost: %v", got)
			}
		})
	}
}
