package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/umair050/cricketApp-sub000/internal/domain/player"
	"github.com/umair050/cricketApp-sub000/internal/domain/team"
	qb "github.com/umair050/cricketApp-sub000/internal/platform/querybuilder"
)

// TeamDirectory reads the team registry table.
type TeamDirectory struct {
	db *sqlx.DB
}

func NewTeamDirectory(db *sqlx.DB) *TeamDirectory {
	return &TeamDirectory{db: db}
}

func (r *TeamDirectory) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("public_id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}
	return team.Team{ID: row.PublicID, Name: row.Name, Short: row.Short}, true, nil
}

// PlayerDirectory reads the player registry table.
type PlayerDirectory struct {
	db *sqlx.DB
}

func NewPlayerDirectory(db *sqlx.DB) *PlayerDirectory {
	return &PlayerDirectory{db: db}
}

func (r *PlayerDirectory) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("public_id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}
	return player.Player{
		ID:     row.PublicID,
		TeamID: row.TeamID,
		Name:   row.Name,
		Role:   player.Role(row.Role),
	}, true, nil
}
