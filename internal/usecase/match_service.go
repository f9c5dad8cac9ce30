package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/player"
	"github.com/umair050/cricketApp-sub000/internal/domain/team"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	idgen "github.com/umair050/cricketApp-sub000/internal/platform/id"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
	"github.com/umair050/cricketApp-sub000/internal/platform/resilience"
)

type CreateMatchInput struct {
	Type         match.Type
	TournamentID string
	GroupID      string
	Stage        match.Stage
	TeamAID      string
	TeamBID      string
	ScheduledAt  time.Time
	OversLimit   int
}

type MatchResultInput struct {
	Status       match.Status
	WinnerTeamID string
	TeamAScore   string
	TeamBScore   string
	ManOfMatchID string
}

type tournamentInvalidator interface {
	InvalidateTournament(ctx context.Context, tournamentID string)
}

type MatchService struct {
	uow         unitofwork.UnitOfWork
	teams       team.Directory
	players     player.Directory
	points      *PointsTableService
	locks       *resilience.KeyLock
	leaderboard tournamentInvalidator
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
}

// NewMatchService wires the match lifecycle. locks must be the same KeyLock
// the LedgerService uses so results never interleave with deliveries.
func NewMatchService(
	uow unitofwork.UnitOfWork,
	teams team.Directory,
	players player.Directory,
	points *PointsTableService,
	locks *resilience.KeyLock,
	leaderboard tournamentInvalidator,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if locks == nil {
		locks = resilience.NewKeyLock()
	}
	return &MatchService{
		uow:         uow,
		teams:       teams,
		players:     players,
		points:      points,
		locks:       locks,
		leaderboard: leaderboard,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	input.TeamAID = strings.TrimSpace(input.TeamAID)
	input.TeamBID = strings.TrimSpace(input.TeamBID)
	input.TournamentID = strings.TrimSpace(input.TournamentID)
	input.GroupID = strings.TrimSpace(input.GroupID)
	if input.Type == "" {
		input.Type = match.TypeFriendly
		if input.TournamentID != "" {
			input.Type = match.TypeTournament
		}
	}
	if input.TeamAID == "" || input.TeamBID == "" {
		return match.Match{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if input.TeamAID == input.TeamBID {
		return match.Match{}, invalidInput(match.ErrSelfPlay)
	}
	if input.Type == match.TypeTournament && input.TournamentID == "" {
		return match.Match{}, fmt.Errorf("%w: tournament id is required for tournament matches", ErrInvalidInput)
	}
	if input.OversLimit < 0 {
		return match.Match{}, fmt.Errorf("%w: overs limit must not be negative", ErrInvalidInput)
	}
	for _, teamID := range []string{input.TeamAID, input.TeamBID} {
		if err := ensureTeam(ctx, s.teams, teamID); err != nil {
			return match.Match{}, err
		}
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	now := s.now().UTC()
	m := match.Match{
		ID:           matchID,
		Type:         input.Type,
		TournamentID: input.TournamentID,
		GroupID:      input.GroupID,
		Stage:        input.Stage,
		TeamAID:      input.TeamAID,
		TeamBID:      input.TeamBID,
		ScheduledAt:  input.ScheduledAt.UTC(),
		OversLimit:   input.OversLimit,
		Status:       match.StatusScheduled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if m.ScheduledAt.IsZero() {
		m.ScheduledAt = now
	}

	err = s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		if m.Type == match.TypeTournament {
			t, err := loadTournament(ctx, tx, m.TournamentID)
			if err != nil {
				return err
			}
			if m.OversLimit == 0 {
				m.OversLimit = t.OversLimit
			}
			if m.GroupID != "" {
				g, ok, err := tx.Tournaments().GetGroup(ctx, m.GroupID)
				if err != nil {
					return fmt.Errorf("get group: %w", err)
				}
				if !ok || g.TournamentID != m.TournamentID {
					return fmt.Errorf("%w: group=%s", ErrNotFound, m.GroupID)
				}
			}
		}
		if m.OversLimit == 0 {
			m.OversLimit = match.DefaultOversLimit
		}
		if err := m.Validate(); err != nil {
			return invalidInput(err)
		}
		if err := tx.Matches().Create(ctx, m); err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match created",
		"match_id", m.ID,
		"type", string(m.Type),
		"team_a_id", m.TeamAID,
		"team_b_id", m.TeamBID,
	)
	return m, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return loadMatch(ctx, s.uow, matchID)
}

// UpdateMatchResult closes a match. Completing a tournament match with a
// winner updates the points table in the same transaction.
func (s *MatchService) UpdateMatchResult(ctx context.Context, matchID string, input MatchResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatchResult", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	input.WinnerTeamID = strings.TrimSpace(input.WinnerTeamID)
	input.ManOfMatchID = strings.TrimSpace(input.ManOfMatchID)
	switch input.Status {
	case match.StatusCompleted:
	case match.StatusCancelled:
		if input.WinnerTeamID != "" {
			return match.Match{}, fmt.Errorf("%w: a cancelled match has no winner", ErrInvalidInput)
		}
	default:
		return match.Match{}, fmt.Errorf("%w: result status must be completed or cancelled, got %q", ErrInvalidInput, input.Status)
	}
	if input.ManOfMatchID != "" {
		_, ok, err := s.players.GetByID(ctx, input.ManOfMatchID)
		if err != nil {
			return match.Match{}, fmt.Errorf("%w: get player=%s: %v", ErrDependencyUnavailable, input.ManOfMatchID, err)
		}
		if !ok {
			return match.Match{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.ManOfMatchID)
		}
	}

	unlock, err := s.locks.Lock(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("lock match=%s: %w", matchID, err)
	}
	defer unlock()

	var updated match.Match
	err = s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		m, err := loadOpenMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if input.WinnerTeamID != "" && !m.HasTeam(input.WinnerTeamID) {
			return invalidInput(match.ErrWinnerNotInMatch)
		}

		m.Status = input.Status
		m.WinnerTeamID = input.WinnerTeamID
		m.TeamAScore = strings.TrimSpace(input.TeamAScore)
		m.TeamBScore = strings.TrimSpace(input.TeamBScore)
		m.ManOfMatchID = input.ManOfMatchID
		m.UpdatedAt = s.now().UTC()
		if err := tx.Matches().Update(ctx, m); err != nil {
			return fmt.Errorf("update match result: %w", err)
		}
		if err := s.points.ApplyResult(ctx, tx, m); err != nil {
			return err
		}

		updated = m
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}

	if updated.TournamentID != "" && s.leaderboard != nil {
		s.leaderboard.InvalidateTournament(ctx, updated.TournamentID)
	}
	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", updated.ID,
		"status", string(updated.Status),
		"winner_team_id", updated.WinnerTeamID,
	)
	return updated, nil
}

// DeleteMatch soft-deletes a match. Its ledger and scorecards are kept.
func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	unlock, err := s.locks.Lock(ctx, matchID)
	if err != nil {
		return fmt.Errorf("lock match=%s: %w", matchID, err)
	}
	defer unlock()

	var deleted match.Match
	err = s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		m, err := loadMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		m.IsDeleted = true
		m.UpdatedAt = s.now().UTC()
		if err := tx.Matches().Update(ctx, m); err != nil {
			return fmt.Errorf("soft delete match: %w", err)
		}
		deleted = m
		return nil
	})
	if err != nil {
		return err
	}

	if deleted.TournamentID != "" && s.leaderboard != nil {
		s.leaderboard.InvalidateTournament(ctx, deleted.TournamentID)
	}
	s.logger.InfoContext(ctx, "match deleted", "match_id", matchID)
	return nil
}
