package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	idgen "github.com/umair050/cricketApp-sub000/internal/platform/id"
)

// ScorecardAggregator keeps per-player match cards in step with the ball
// ledger. Apply and Revert must run inside the same unit of work as the
// ledger write they mirror.
type ScorecardAggregator struct {
	idGen idgen.Generator
	now   func() time.Time
}

func NewScorecardAggregator(idGen idgen.Generator) *ScorecardAggregator {
	return &ScorecardAggregator{
		idGen: idGen,
		now:   time.Now,
	}
}

// Apply folds an appended delivery into the batsman, bowler and fielder
// cards. The delivery must already be in the ledger.
func (a *ScorecardAggregator) Apply(ctx context.Context, tx unitofwork.Repositories, item ball.Ball) error {
	cards := tx.Scorecards()

	batsman, err := a.loadOrNew(ctx, cards, scorecard.Key{MatchID: item.MatchID, PlayerID: item.BatsmanID, TeamID: item.BattingTeamID})
	if err != nil {
		return err
	}
	batsman.ApplyBatting(item)
	if err := a.save(ctx, cards, batsman); err != nil {
		return err
	}

	legalBalls, err := tx.Balls().CountLegalByBowler(ctx, item.MatchID, item.BowlerID)
	if err != nil {
		return fmt.Errorf("count legal balls for bowler=%s: %w", item.BowlerID, err)
	}
	bowler, err := a.loadOrNew(ctx, cards, scorecard.Key{MatchID: item.MatchID, PlayerID: item.BowlerID, TeamID: item.BowlingTeamID})
	if err != nil {
		return err
	}
	bowler.ApplyBowling(item, legalBalls)
	if err := a.save(ctx, cards, bowler); err != nil {
		return err
	}

	fielderID, ok := scorecard.FielderFor(item)
	if !ok {
		return nil
	}
	fielder, err := a.loadOrNew(ctx, cards, scorecard.Key{MatchID: item.MatchID, PlayerID: fielderID, TeamID: item.BowlingTeamID})
	if err != nil {
		return err
	}
	fielder.ApplyFielding(item)
	return a.save(ctx, cards, fielder)
}

// Revert undoes Apply for the ledger top. It runs before the delivery is
// removed, so the bowler's legal-ball count still includes it.
func (a *ScorecardAggregator) Revert(ctx context.Context, tx unitofwork.Repositories, item ball.Ball) error {
	cards := tx.Scorecards()

	batsman, ok, err := cards.Get(ctx, scorecard.Key{MatchID: item.MatchID, PlayerID: item.BatsmanID, TeamID: item.BattingTeamID})
	if err != nil {
		return fmt.Errorf("get batsman scorecard: %w", err)
	}
	if ok {
		batsman.RevertBatting(item)
		if err := a.save(ctx, cards, batsman); err != nil {
			return err
		}
	}

	legalBalls, err := tx.Balls().CountLegalByBowler(ctx, item.MatchID, item.BowlerID)
	if err != nil {
		return fmt.Errorf("count legal balls for bowler=%s: %w", item.BowlerID, err)
	}
	if item.IsLegal {
		legalBalls--
	}
	bowler, ok, err := cards.Get(ctx, scorecard.Key{MatchID: item.MatchID, PlayerID: item.BowlerID, TeamID: item.BowlingTeamID})
	if err != nil {
		return fmt.Errorf("get bowler scorecard: %w", err)
	}
	if ok {
		bowler.RevertBowling(item, legalBalls)
		if err := a.save(ctx, cards, bowler); err != nil {
			return err
		}
	}

	fielderID, credited := scorecard.FielderFor(item)
	if !credited {
		return nil
	}
	fielder, ok, err := cards.Get(ctx, scorecard.Key{MatchID: item.MatchID, PlayerID: fielderID, TeamID: item.BowlingTeamID})
	if err != nil {
		return fmt.Errorf("get fielder scorecard: %w", err)
	}
	if !ok {
		return nil
	}
	fielder.RevertFielding(item)
	return a.save(ctx, cards, fielder)
}

func (a *ScorecardAggregator) loadOrNew(ctx context.Context, cards scorecard.Repository, key scorecard.Key) (scorecard.Scorecard, error) {
	card, ok, err := cards.Get(ctx, key)
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("get scorecard player=%s team=%s: %w", key.PlayerID, key.TeamID, err)
	}
	if ok {
		return card, nil
	}

	cardID, err := a.idGen.NewID()
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("generate scorecard id: %w", err)
	}
	card = scorecard.New(key)
	card.ID = cardID
	card.CreatedAt = a.now().UTC()
	return card, nil
}

func (a *ScorecardAggregator) save(ctx context.Context, cards scorecard.Repository, card scorecard.Scorecard) error {
	card.UpdatedAt = a.now().UTC()
	if _, err := cards.Upsert(ctx, card); err != nil {
		return fmt.Errorf("upsert scorecard player=%s team=%s: %w", card.PlayerID, card.TeamID, err)
	}
	return nil
}
