package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
	qb "github.com/umair050/cricketApp-sub000/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db sqlx.ExtContext
}

func NewTournamentRepository(db sqlx.ExtContext) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.Eq("public_id", tournamentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build select tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("select tournament: %w", err)
	}
	return tournament.Tournament{
		ID:         row.PublicID,
		Name:       row.Name,
		StartDate:  row.StartDate.UTC(),
		OversLimit: row.OversLimit,
		CreatedAt:  row.CreatedAt.UTC(),
	}, true, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	query, args, err := qb.InsertModel("tournaments", tournamentInsertModel{
		PublicID:   item.ID,
		Name:       item.Name,
		StartDate:  item.StartDate,
		OversLimit: item.OversLimit,
		CreatedAt:  item.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert tournament query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tournament %s already exists", item.ID)
		}
		return fmt.Errorf("insert tournament: %w", err)
	}
	return nil
}

func (r *TournamentRepository) GetGroup(ctx context.Context, groupID string) (tournament.Group, bool, error) {
	query, args, err := qb.Select("*").From("tournament_groups").
		Where(qb.Eq("public_id", groupID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Group{}, false, fmt.Errorf("build select group query: %w", err)
	}

	var row groupTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Group{}, false, nil
		}
		return tournament.Group{}, false, fmt.Errorf("select group: %w", err)
	}
	return groupFromRow(row), true, nil
}

func (r *TournamentRepository) CreateGroup(ctx context.Context, item tournament.Group) error {
	query, args, err := qb.InsertModel("tournament_groups", groupInsertModel{
		PublicID:        item.ID,
		TournamentID:    item.TournamentID,
		Name:            item.Name,
		MaxTeams:        item.MaxTeams,
		QualifyingTeams: item.QualifyingTeams,
		CreatedAt:       item.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert group query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("group %s already exists", item.ID)
		}
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

func (r *TournamentRepository) ListGroups(ctx context.Context, tournamentID string) ([]tournament.Group, error) {
	query, args, err := qb.Select("*").From("tournament_groups").
		Where(qb.Eq("tournament_public_id", tournamentID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list groups query: %w", err)
	}

	var rows []groupTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	out := make([]tournament.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, groupFromRow(row))
	}
	return out, nil
}

func groupFromRow(row groupTableModel) tournament.Group {
	return tournament.Group{
		ID:              row.PublicID,
		TournamentID:    row.TournamentID,
		Name:            row.Name,
		MaxTeams:        row.MaxTeams,
		QualifyingTeams: row.QualifyingTeams,
		CreatedAt:       row.CreatedAt.UTC(),
	}
}
