package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	qb "github.com/umair050/cricketApp-sub000/internal/platform/querybuilder"
)

const upsertScorecardSuffix = `ON CONFLICT (match_public_id, player_public_id, team_public_id)
DO UPDATE SET
    runs = EXCLUDED.runs,
    balls_faced = EXCLUDED.balls_faced,
    fours = EXCLUDED.fours,
    sixes = EXCLUDED.sixes,
    strike_rate = EXCLUDED.strike_rate,
    is_out = EXCLUDED.is_out,
    dismissal_type = EXCLUDED.dismissal_type,
    overs_bowled = EXCLUDED.overs_bowled,
    wickets = EXCLUDED.wickets,
    runs_conceded = EXCLUDED.runs_conceded,
    maidens = EXCLUDED.maidens,
    economy = EXCLUDED.economy,
    catches = EXCLUDED.catches,
    run_outs = EXCLUDED.run_outs,
    stumpings = EXCLUDED.stumpings,
    updated_at = EXCLUDED.updated_at
RETURNING *`

type ScorecardRepository struct {
	db sqlx.ExtContext
}

func NewScorecardRepository(db sqlx.ExtContext) *ScorecardRepository {
	return &ScorecardRepository{db: db}
}

func (r *ScorecardRepository) Get(ctx context.Context, key scorecard.Key) (scorecard.Scorecard, bool, error) {
	query, args, err := qb.Select("*").From("player_match_scorecards").
		Where(
			qb.Eq("match_public_id", key.MatchID),
			qb.Eq("player_public_id", key.PlayerID),
			qb.Eq("team_public_id", key.TeamID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return scorecard.Scorecard{}, false, fmt.Errorf("build select scorecard query: %w", err)
	}

	var row scorecardTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scorecard.Scorecard{}, false, nil
		}
		return scorecard.Scorecard{}, false, fmt.Errorf("select scorecard: %w", err)
	}
	return scorecardFromRow(row), true, nil
}

// Upsert writes the card and returns the stored row. An existing row keeps
// its public id and created_at.
func (r *ScorecardRepository) Upsert(ctx context.Context, item scorecard.Scorecard) (scorecard.Scorecard, error) {
	insertModel := scorecardInsertModel{
		PublicID:      item.ID,
		MatchID:       item.MatchID,
		PlayerID:      item.PlayerID,
		TeamID:        item.TeamID,
		Runs:          item.Runs,
		BallsFaced:    item.BallsFaced,
		Fours:         item.Fours,
		Sixes:         item.Sixes,
		StrikeRate:    item.StrikeRate,
		IsOut:         item.IsOut,
		DismissalType: string(item.DismissalType),
		OversBowled:   item.OversBowled,
		Wickets:       item.Wickets,
		RunsConceded:  item.RunsConceded,
		Maidens:       item.Maidens,
		Economy:       item.Economy,
		Catches:       item.Catches,
		RunOuts:       item.RunOuts,
		Stumpings:     item.Stumpings,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("player_match_scorecards", insertModel, upsertScorecardSuffix)
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("build upsert scorecard query: %w", err)
	}

	var row scorecardTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("upsert scorecard player=%s: %w", item.PlayerID, err)
	}
	return scorecardFromRow(row), nil
}

func (r *ScorecardRepository) ListByMatch(ctx context.Context, matchID string) ([]scorecard.Scorecard, error) {
	query, args, err := qb.Select("*").From("player_match_scorecards").
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scorecards query: %w", err)
	}

	var rows []scorecardTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list scorecards: %w", err)
	}

	out := make([]scorecard.Scorecard, 0, len(rows))
	for _, row := range rows {
		out = append(out, scorecardFromRow(row))
	}
	return out, nil
}

func scorecardFromRow(row scorecardTableModel) scorecard.Scorecard {
	return scorecard.Scorecard{
		ID:            row.PublicID,
		MatchID:       row.MatchID,
		PlayerID:      row.PlayerID,
		TeamID:        row.TeamID,
		Runs:          row.Runs,
		BallsFaced:    row.BallsFaced,
		Fours:         row.Fours,
		Sixes:         row.Sixes,
		StrikeRate:    row.StrikeRate,
		IsOut:         row.IsOut,
		DismissalType: ball.WicketType(row.DismissalType),
		OversBowled:   row.OversBowled,
		Wickets:       row.Wickets,
		RunsConceded:  row.RunsConceded,
		Maidens:       row.Maidens,
		Economy:       row.Economy,
		Catches:       row.Catches,
		RunOuts:       row.RunOuts,
		Stumpings:     row.Stumpings,
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}
}
