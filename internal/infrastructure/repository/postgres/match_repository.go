package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	qb "github.com/umair050/cricketApp-sub000/internal/platform/querybuilder"
)

type MatchRepository struct {
	db sqlx.ExtContext
}

func NewMatchRepository(db sqlx.ExtContext) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("public_id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	insertModel := matchInsertModel{
		PublicID:           item.ID,
		MatchType:          string(item.Type),
		TournamentID:       nullString(item.TournamentID),
		GroupID:            nullString(item.GroupID),
		Stage:              string(item.Stage),
		TeamAID:            item.TeamAID,
		TeamBID:            item.TeamBID,
		ScheduledAt:        item.ScheduledAt,
		OversLimit:         item.OversLimit,
		Status:             string(item.Status),
		WinnerTeamID:       item.WinnerTeamID,
		TeamAScore:         item.TeamAScore,
		TeamBScore:         item.TeamBScore,
		ManOfMatchPlayerID: item.ManOfMatchID,
		IsDeleted:          item.IsDeleted,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("matches", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("match %s already exists", item.ID)
		}
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	updateModel := matchUpdateModel{
		Status:             string(item.Status),
		WinnerTeamID:       item.WinnerTeamID,
		TeamAScore:         item.TeamAScore,
		TeamBScore:         item.TeamBScore,
		ManOfMatchPlayerID: item.ManOfMatchID,
		IsDeleted:          item.IsDeleted,
		UpdatedAt:          item.UpdatedAt,
	}
	query, args, err := qb.UpdateModel("matches", updateModel, qb.Eq("public_id", item.ID))
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update match rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("match %s not found", item.ID)
	}
	return nil
}

// ListByTournament skips soft-deleted matches.
func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.Expr("is_deleted = ?", false),
		).
		OrderBy("scheduled_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tournament matches query: %w", err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tournament matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:           row.PublicID,
		Type:         match.Type(row.MatchType),
		TournamentID: nullStringValue(row.TournamentID),
		GroupID:      nullStringValue(row.GroupID),
		Stage:        match.Stage(row.Stage),
		TeamAID:      row.TeamAID,
		TeamBID:      row.TeamBID,
		ScheduledAt:  row.ScheduledAt.UTC(),
		OversLimit:   row.OversLimit,
		Status:       match.Status(row.Status),
		WinnerTeamID: row.WinnerTeamID,
		TeamAScore:   row.TeamAScore,
		TeamBScore:   row.TeamBScore,
		ManOfMatchID: row.ManOfMatchPlayerID,
		IsDeleted:    row.IsDeleted,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}
