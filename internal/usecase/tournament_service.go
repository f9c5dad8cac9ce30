package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/team"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	idgen "github.com/umair050/cricketApp-sub000/internal/platform/id"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
)

type CreateGroupInput struct {
	TournamentID    string
	Name            string
	MaxTeams        int
	QualifyingTeams int
}

// TournamentService manages group membership ahead of fixture generation.
type TournamentService struct {
	uow    unitofwork.UnitOfWork
	teams  team.Directory
	idGen  idgen.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewTournamentService(uow unitofwork.UnitOfWork, teams team.Directory, idGen idgen.Generator, logger *logging.Logger) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TournamentService{
		uow:    uow,
		teams:  teams,
		idGen:  idGen,
		logger: logger,
		now:    time.Now,
	}
}

func (s *TournamentService) CreateGroup(ctx context.Context, input CreateGroupInput) (tournament.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.CreateGroup")
	defer span.End()

	input.TournamentID = strings.TrimSpace(input.TournamentID)
	input.Name = strings.TrimSpace(input.Name)
	if input.TournamentID == "" {
		return tournament.Group{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	groupID, err := s.idGen.NewID()
	if err != nil {
		return tournament.Group{}, fmt.Errorf("generate group id: %w", err)
	}
	g := tournament.Group{
		ID:              groupID,
		TournamentID:    input.TournamentID,
		Name:            input.Name,
		MaxTeams:        input.MaxTeams,
		QualifyingTeams: input.QualifyingTeams,
		CreatedAt:       s.now().UTC(),
	}
	if err := g.Validate(); err != nil {
		return tournament.Group{}, invalidInput(err)
	}

	err = s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		if _, err := loadTournament(ctx, tx, g.TournamentID); err != nil {
			return err
		}
		if err := tx.Tournaments().CreateGroup(ctx, g); err != nil {
			return fmt.Errorf("create group: %w", err)
		}
		return nil
	})
	if err != nil {
		return tournament.Group{}, err
	}

	s.logger.InfoContext(ctx, "group created", "tournament_id", g.TournamentID, "group_id", g.ID, "name", g.Name)
	return g, nil
}

func (s *TournamentService) ListGroups(ctx context.Context, tournamentID string) ([]tournament.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListGroups", tournamentAttr(tournamentID))
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if _, err := loadTournament(ctx, s.uow, tournamentID); err != nil {
		return nil, err
	}
	groups, err := s.uow.Tournaments().ListGroups(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// AssignTeamToGroup enrols a team in a group by creating or updating its
// standing row. A team belongs to at most one group per tournament.
func (s *TournamentService) AssignTeamToGroup(ctx context.Context, tournamentID, groupID, teamID string) (tournament.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.AssignTeamToGroup", tournamentAttr(tournamentID))
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	groupID = strings.TrimSpace(groupID)
	teamID = strings.TrimSpace(teamID)
	if tournamentID == "" || groupID == "" || teamID == "" {
		return tournament.Standing{}, fmt.Errorf("%w: tournament, group and team ids are required", ErrInvalidInput)
	}
	if err := ensureTeam(ctx, s.teams, teamID); err != nil {
		return tournament.Standing{}, err
	}

	var row tournament.Standing
	err := s.uow.Do(ctx, func(ctx context.Context, tx unitofwork.Repositories) error {
		if _, err := loadTournament(ctx, tx, tournamentID); err != nil {
			return err
		}
		g, ok, err := tx.Tournaments().GetGroup(ctx, groupID)
		if err != nil {
			return fmt.Errorf("get group: %w", err)
		}
		if !ok || g.TournamentID != tournamentID {
			return fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
		}

		now := s.now().UTC()
		row, err = loadOrNewStanding(ctx, tx, tournamentID, teamID, now)
		if err != nil {
			return err
		}
		if row.GroupID == groupID {
			return nil
		}
		if row.GroupID != "" {
			return fmt.Errorf("%w: team=%s already in group=%s", ErrConflict, teamID, row.GroupID)
		}

		if g.MaxTeams > 0 {
			members, err := tx.Standings().ListByGroup(ctx, tournamentID, groupID)
			if err != nil {
				return fmt.Errorf("list group members: %w", err)
			}
			if len(members) >= g.MaxTeams {
				return fmt.Errorf("%w: group=%s is full", ErrConflict, groupID)
			}
		}

		row.GroupID = groupID
		row.UpdatedAt = now
		if err := tx.Standings().Upsert(ctx, row); err != nil {
			return fmt.Errorf("upsert standing: %w", err)
		}
		return nil
	})
	if err != nil {
		return tournament.Standing{}, err
	}

	s.logger.InfoContext(ctx, "team assigned to group", "tournament_id", tournamentID, "group_id", groupID, "team_id", teamID)
	return row, nil
}
