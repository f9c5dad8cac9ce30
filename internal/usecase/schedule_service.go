package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/team"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	idgen "github.com/umair050/cricketApp-sub000/internal/platform/id"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
)

type ScheduleConfig struct {
	// MatchSpacing separates consecutive group fixtures from the tournament start.
	MatchSpacing time.Duration
	// KnockoutLeadTime is how long after generation the semi finals are played.
	KnockoutLeadTime time.Duration
}

func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		MatchSpacing:     24 * time.Hour,
		KnockoutLeadTime: 72 * time.Hour,
	}
}

type ScheduleService struct {
	uow    unitofwork.UnitOfWork
	teams  team.Directory
	idGen  idgen.Generator
	cfg    ScheduleConfig
	logger *logging.Logger
	now    func() time.Time
}

func NewScheduleService(
	uow unitofwork.UnitOfWork,
	teams team.Directory,
	idGen idgen.Generator,
	cfg ScheduleConfig,
	logger *logging.Logger,
) *ScheduleService {
	defaults := DefaultScheduleConfig()
	if cfg.MatchSpacing <= 0 {
		cfg.MatchSpacing = defaults.MatchSpacing
	}
	if cfg.KnockoutLeadTime <= 0 {
		cfg.KnockoutLeadTime = defaults.KnockoutLeadTime
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleService{
		uow:    uow,
		teams:  teams,
		idGen:  idGen,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// GenerateGroupMatches creates a round robin inside every group. Fixtures
// are spaced MatchSpacing apart starting on the tournament start date.
func (s *ScheduleService) GenerateGroupMatches(ctx context.Context, tournamentID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GenerateGroupMatches", tournamentAttr(tournamentID))
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	var created []match.Match
	err := s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		t, err := loadTournament(ctx, tx, tournamentID)
		if err != nil {
			return err
		}
		groups, err := tx.Tournaments().ListGroups(ctx, tournamentID)
		if err != nil {
			return fmt.Errorf("list groups: %w", err)
		}
		if len(groups) == 0 {
			return fmt.Errorf("%w: tournament=%s has no groups", ErrInvalidInput, tournamentID)
		}

		now := s.now().UTC()
		slot := 0
		for _, g := range groups {
			members, err := tx.Standings().ListByGroup(ctx, tournamentID, g.ID)
			if err != nil {
				return fmt.Errorf("list group=%s members: %w", g.ID, err)
			}
			teamIDs := make([]string, 0, len(members))
			for _, row := range members {
				teamIDs = append(teamIDs, row.TeamID)
			}

			for _, pair := range tournament.RoundRobinPairs(teamIDs) {
				m, err := s.newTournamentMatch(t, pair, match.StageGroup, t.StartDate.Add(time.Duration(slot)*s.cfg.MatchSpacing), now)
				if err != nil {
					return err
				}
				m.GroupID = g.ID
				if err := tx.Matches().Create(ctx, m); err != nil {
					return fmt.Errorf("create group match: %w", err)
				}
				created = append(created, m)
				slot++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "group fixtures generated", "tournament_id", tournamentID, "matches", len(created))
	return created, nil
}

// GenerateKnockoutMatches seeds the semi finals 1v4 and 2v3 from the
// qualified teams. Finals are left to a later result-driven step.
func (s *ScheduleService) GenerateKnockoutMatches(ctx context.Context, tournamentID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GenerateKnockoutMatches", tournamentAttr(tournamentID))
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	var created []match.Match
	err := s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		t, err := loadTournament(ctx, tx, tournamentID)
		if err != nil {
			return err
		}
		rows, err := tx.Standings().ListByTournament(ctx, tournamentID)
		if err != nil {
			return fmt.Errorf("list standings: %w", err)
		}
		pairs, err := tournament.SemiFinalSeeds(rows)
		if err != nil {
			return invalidInput(err)
		}

		now := s.now().UTC()
		scheduledAt := now.Add(s.cfg.KnockoutLeadTime)
		for _, pair := range pairs {
			m, err := s.newTournamentMatch(t, pair, match.StageSemiFinal, scheduledAt, now)
			if err != nil {
				return err
			}
			if err := tx.Matches().Create(ctx, m); err != nil {
				return fmt.Errorf("create knockout match: %w", err)
			}
			created = append(created, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "knockout fixtures generated", "tournament_id", tournamentID, "matches", len(created))
	return created, nil
}

// AdvanceTeamsToKnockout marks the given teams as qualified.
func (s *ScheduleService) AdvanceTeamsToKnockout(ctx context.Context, tournamentID string, teamIDs []string) ([]tournament.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.AdvanceTeamsToKnockout", tournamentAttr(tournamentID))
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	cleaned, err := cleanTeamIDs(teamIDs)
	if err != nil {
		return nil, err
	}
	for _, teamID := range cleaned {
		if err := ensureTeam(ctx, s.teams, teamID); err != nil {
			return nil, err
		}
	}

	out := make([]tournament.Standing, 0, len(cleaned))
	err = s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		if _, err := loadTournament(ctx, tx, tournamentID); err != nil {
			return err
		}
		now := s.now().UTC()
		for _, teamID := range cleaned {
			row, err := loadOrNewStanding(ctx, tx, tournamentID, teamID, now)
			if err != nil {
				return err
			}
			row.IsQualified = true
			row.UpdatedAt = now
			if err := tx.Standings().Upsert(ctx, row); err != nil {
				return fmt.Errorf("upsert standing team=%s: %w", teamID, err)
			}
			out = append(out, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "teams advanced to knockout", "tournament_id", tournamentID, "teams", cleaned)
	return out, nil
}

func (s *ScheduleService) newTournamentMatch(t tournament.Tournament, pair tournament.Pairing, stage match.Stage, scheduledAt, now time.Time) (match.Match, error) {
	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	m := match.Match{
		ID:           matchID,
		Type:         match.TypeTournament,
		TournamentID: t.ID,
		Stage:        stage,
		TeamAID:      pair.TeamAID,
		TeamBID:      pair.TeamBID,
		ScheduledAt:  scheduledAt,
		OversLimit:   t.OversLimit,
		Status:       match.StatusScheduled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, invalidInput(err)
	}
	return m, nil
}

func cleanTeamIDs(teamIDs []string) ([]string, error) {
	if len(teamIDs) == 0 {
		return nil, fmt.Errorf("%w: team ids are required", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(teamIDs))
	out := make([]string, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		teamID = strings.TrimSpace(teamID)
		if teamID == "" {
			return nil, fmt.Errorf("%w: team id must not be empty", ErrInvalidInput)
		}
		if _, ok := seen[teamID]; ok {
			return nil, fmt.Errorf("%w: duplicate team id %s", ErrInvalidInput, teamID)
		}
		seen[teamID] = struct{}{}
		out = append(out, teamID)
	}
	return out, nil
}

func ensureTeam(ctx context.Context, teams team.Directory, teamID string) error {
	_, ok, err := teams.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("%w: get team=%s: %v", ErrDependencyUnavailable, teamID, err)
	}
	if !ok {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}
