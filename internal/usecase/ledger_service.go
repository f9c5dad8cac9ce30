package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/player"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
	"github.com/umair050/cricketApp-sub000/internal/platform/resilience"
)

// DeliveryInput is the scorer's payload for one ball.
type DeliveryInput struct {
	BattingTeamID string
	BowlingTeamID string
	OverNumber    float64
	BatsmanID     string
	NonStrikerID  string
	BowlerID      string
	FielderID     string
	Outcome       ball.Outcome
	Runs          int
	Extras        int
	IsWicket      bool
	WicketType    ball.WicketType
}

// LedgerService appends and undoes deliveries. Writes for one match are
// serialized, and each write commits together with its scorecard changes.
type LedgerService struct {
	uow        unitofwork.UnitOfWork
	players    player.Directory
	aggregator *ScorecardAggregator
	locks      *resilience.KeyLock
	logger     *logging.Logger
	now        func() time.Time
}

func NewLedgerService(
	uow unitofwork.UnitOfWork,
	players player.Directory,
	aggregator *ScorecardAggregator,
	locks *resilience.KeyLock,
	logger *logging.Logger,
) *LedgerService {
	if logger == nil {
		logger = logging.Default()
	}
	if locks == nil {
		locks = resilience.NewKeyLock()
	}

	return &LedgerService{
		uow:        uow,
		players:    players,
		aggregator: aggregator,
		locks:      locks,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *LedgerService) AppendBall(ctx context.Context, matchID string, input DeliveryInput) (ball.Ball, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.AppendBall", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return ball.Ball{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item := ball.Ball{
		MatchID:       matchID,
		BattingTeamID: input.BattingTeamID,
		BowlingTeamID: input.BowlingTeamID,
		OverNumber:    input.OverNumber,
		BatsmanID:     input.BatsmanID,
		NonStrikerID:  input.NonStrikerID,
		BowlerID:      input.BowlerID,
		FielderID:     input.FielderID,
		Outcome:       input.Outcome,
		Runs:          input.Runs,
		Extras:        input.Extras,
		IsWicket:      input.IsWicket,
		WicketType:    input.WicketType,
	}.Normalize()
	if err := item.Validate(); err != nil {
		return ball.Ball{}, invalidInput(err)
	}
	if err := s.ensurePlayers(ctx, item.BatsmanID, item.BowlerID, item.NonStrikerID, item.FielderID); err != nil {
		return ball.Ball{}, err
	}

	unlock, err := s.locks.Lock(ctx, matchID)
	if err != nil {
		return ball.Ball{}, fmt.Errorf("lock match=%s: %w", matchID, err)
	}
	defer unlock()

	var (
		stored   ball.Ball
		wentLive bool
	)
	err = s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		m, err := loadOpenMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if !m.HasTeam(item.BattingTeamID) || !m.HasTeam(item.BowlingTeamID) {
			return fmt.Errorf("%w: batting and bowling teams must be the match teams", ErrInvalidInput)
		}

		top, err := tx.Balls().LockTop(ctx, matchID)
		if err != nil {
			return fmt.Errorf("lock ledger top: %w", err)
		}
		item.BallNumber = top + 1
		item.CreatedAt = s.now().UTC()
		if err := tx.Balls().Append(ctx, item); err != nil {
			return ledgerConflict(fmt.Errorf("append ball=%d: %w", item.BallNumber, err))
		}
		if err := s.aggregator.Apply(ctx, tx, item); err != nil {
			return fmt.Errorf("apply ball=%d to scorecards: %w", item.BallNumber, err)
		}

		if m.Status == match.StatusScheduled {
			m.Status = match.StatusLive
			m.UpdatedAt = item.CreatedAt
			if err := tx.Matches().Update(ctx, m); err != nil {
				return fmt.Errorf("mark match live: %w", err)
			}
			wentLive = true
		}

		stored = item
		return nil
	})
	if err != nil {
		return ball.Ball{}, err
	}

	s.logger.InfoContext(ctx, "ball appended",
		"match_id", matchID,
		"ball_number", stored.BallNumber,
		"outcome", string(stored.Outcome),
		"runs", stored.Runs,
		"extras", stored.Extras,
		"is_wicket", stored.IsWicket,
	)
	if s.logger.Enabled(logging.LevelDebug) {
		s.logger.DebugContext(ctx, "ball participants",
			"match_id", matchID,
			"ball_number", stored.BallNumber,
			"batting_team_id", stored.BattingTeamID,
			"over", stored.OverNumber,
			"batsman_id", stored.BatsmanID,
			"non_striker_id", stored.NonStrikerID,
			"bowler_id", stored.BowlerID,
			"fielder_id", stored.FielderID,
			"wicket_type", string(stored.WicketType),
		)
	}
	if wentLive {
		s.logger.InfoContext(ctx, "match is live", "match_id", matchID)
	}

	return stored, nil
}

// UndoLastBall removes the ledger top and reverts its scorecard effects.
func (s *LedgerService) UndoLastBall(ctx context.Context, matchID string) (ball.Ball, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.UndoLastBall", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return ball.Ball{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	unlock, err := s.locks.Lock(ctx, matchID)
	if err != nil {
		return ball.Ball{}, fmt.Errorf("lock match=%s: %w", matchID, err)
	}
	defer unlock()

	var removed ball.Ball
	err = s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		if _, err := loadOpenMatch(ctx, tx, matchID); err != nil {
			return err
		}
		if _, err := tx.Balls().LockTop(ctx, matchID); err != nil {
			return fmt.Errorf("lock ledger top: %w", err)
		}

		top, ok, err := tx.Balls().Top(ctx, matchID)
		if err != nil {
			return fmt.Errorf("get ledger top: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: no deliveries recorded for match=%s", ErrNotFound, matchID)
		}

		if err := s.aggregator.Revert(ctx, tx, top); err != nil {
			return fmt.Errorf("revert ball=%d from scorecards: %w", top.BallNumber, err)
		}
		if err := tx.Balls().PopTop(ctx, matchID, top.BallNumber); err != nil {
			return ledgerConflict(fmt.Errorf("remove ball=%d: %w", top.BallNumber, err))
		}

		removed = top
		return nil
	})
	if err != nil {
		return ball.Ball{}, err
	}

	s.logger.InfoContext(ctx, "ball undone", "match_id", matchID, "ball_number", removed.BallNumber)
	return removed, nil
}

func (s *LedgerService) ensurePlayers(ctx context.Context, playerIDs ...string) error {
	for _, playerID := range playerIDs {
		if playerID == "" {
			continue
		}
		_, ok, err := s.players.GetByID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("%w: get player=%s: %v", ErrDependencyUnavailable, playerID, err)
		}
		if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
	}
	return nil
}

// ledgerConflict marks ledger ordering failures as ErrConflict. They mean
// another writer moved the top first.
func ledgerConflict(err error) error {
	if errors.Is(err, ball.ErrOutOfOrder) || errors.Is(err, ball.ErrNotTop) {
		return errors.Mark(err, ErrConflict)
	}
	return err
}

// loadOpenMatch returns a live or scheduled, non-deleted match.
func loadOpenMatch(ctx context.Context, tx unitofwork.Repositories, matchID string) (match.Match, error) {
	m, err := loadMatch(ctx, tx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if m.IsClosed() {
		return match.Match{}, fmt.Errorf("%w: match=%s is %s", ErrConflict, matchID, m.Status)
	}
	return m, nil
}

func loadMatch(ctx context.Context, repos unitofwork.Repositories, matchID string) (match.Match, error) {
	m, ok, err := repos.Matches().GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !ok || m.IsDeleted {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}
