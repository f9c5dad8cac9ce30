package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
	qb "github.com/umair050/cricketApp-sub000/internal/platform/querybuilder"
)

type StandingRepository struct {
	db sqlx.ExtContext
}

func NewStandingRepository(db sqlx.ExtContext) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) Get(ctx context.Context, tournamentID, teamID string) (tournament.Standing, bool, error) {
	query, args, err := qb.Select("*").From("tournament_standings").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.Eq("team_public_id", teamID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Standing{}, false, fmt.Errorf("build select standing query: %w", err)
	}

	var row standingTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Standing{}, false, nil
		}
		return tournament.Standing{}, false, fmt.Errorf("select standing: %w", err)
	}
	return standingFromRow(row), true, nil
}

func (r *StandingRepository) Upsert(ctx context.Context, item tournament.Standing) error {
	insertModel := standingInsertModel{
		TournamentID:  item.TournamentID,
		TeamID:        item.TeamID,
		GroupID:       item.GroupID,
		Points:        item.Points,
		NetRunRate:    item.NetRunRate,
		MatchesPlayed: item.MatchesPlayed,
		Wins:          item.Wins,
		Losses:        item.Losses,
		Draws:         item.Draws,
		NoResults:     item.NoResults,
		RunsScored:    item.RunsScored,
		RunsConceded:  item.RunsConceded,
		OversFaced:    item.OversFaced,
		OversBowled:   item.OversBowled,
		IsQualified:   item.IsQualified,
		IsActive:      item.IsActive,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	query, args, err := qb.UpsertModel("tournament_standings", insertModel, "tournament_public_id", "team_public_id")
	if err != nil {
		return fmt.Errorf("build upsert standing query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert standing team=%s: %w", item.TeamID, err)
	}
	return nil
}

func (r *StandingRepository) ListByTournament(ctx context.Context, tournamentID string) ([]tournament.Standing, error) {
	query, args, err := qb.Select("*").From("tournament_standings").
		Where(qb.Eq("tournament_public_id", tournamentID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}
	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) ListByGroup(ctx context.Context, tournamentID, groupID string) ([]tournament.Standing, error) {
	query, args, err := qb.Select("*").From("tournament_standings").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.Eq("group_public_id", groupID),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list group standings query: %w", err)
	}
	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) selectStandings(ctx context.Context, query string, args []any) ([]tournament.Standing, error) {
	var rows []standingTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}
	out := make([]tournament.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingFromRow(row))
	}
	return out, nil
}

func standingFromRow(row standingTableModel) tournament.Standing {
	return tournament.Standing{
		TournamentID:  row.TournamentID,
		TeamID:        row.TeamID,
		GroupID:       row.GroupID,
		Points:        row.Points,
		NetRunRate:    row.NetRunRate,
		MatchesPlayed: row.MatchesPlayed,
		Wins:          row.Wins,
		Losses:        row.Losses,
		Draws:         row.Draws,
		NoResults:     row.NoResults,
		RunsScored:    row.RunsScored,
		RunsConceded:  row.RunsConceded,
		OversFaced:    row.OversFaced,
		OversBowled:   row.OversBowled,
		IsQualified:   row.IsQualified,
		IsActive:      row.IsActive,
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}
}
