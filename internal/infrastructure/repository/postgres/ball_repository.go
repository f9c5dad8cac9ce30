package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	qb "github.com/umair050/cricketApp-sub000/internal/platform/querybuilder"
)

// BallRepository keeps each match ledger in balls and its top in
// ball_ledger_heads. Append and PopTop lock the head row, so they must run
// inside a transaction to serialize writers across instances.
type BallRepository struct {
	db sqlx.ExtContext
}

func NewBallRepository(db sqlx.ExtContext) *BallRepository {
	return &BallRepository{db: db}
}

// LockTop takes the head row lock. Outside a transaction the lock is released
// as soon as the statement finishes.
func (r *BallRepository) LockTop(ctx context.Context, matchID string) (int, error) {
	return r.lockHead(ctx, matchID)
}

func (r *BallRepository) Append(ctx context.Context, item ball.Ball) error {
	top, err := r.lockHead(ctx, item.MatchID)
	if err != nil {
		return err
	}
	if err := checkAppendAt(top, item.BallNumber); err != nil {
		return err
	}

	insertModel := ballInsertModel{
		MatchID:       item.MatchID,
		BallNumber:    item.BallNumber,
		BattingTeamID: item.BattingTeamID,
		BowlingTeamID: item.BowlingTeamID,
		OverNumber:    item.OverNumber,
		BatsmanID:     item.BatsmanID,
		NonStrikerID:  item.NonStrikerID,
		BowlerID:      item.BowlerID,
		FielderID:     item.FielderID,
		Outcome:       string(item.Outcome),
		Runs:          item.Runs,
		Extras:        item.Extras,
		IsWicket:      item.IsWicket,
		WicketType:    string(item.WicketType),
		IsBoundary:    item.IsBoundary,
		IsLegal:       item.IsLegal,
		CreatedAt:     item.CreatedAt,
	}
	query, args, err := qb.InsertModel("balls", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert ball query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ball %d already recorded", ball.ErrOutOfOrder, item.BallNumber)
		}
		return fmt.Errorf("insert ball: %w", err)
	}

	return r.moveHead(ctx, item.MatchID, item.BallNumber)
}

func (r *BallRepository) Top(ctx context.Context, matchID string) (ball.Ball, bool, error) {
	query, args, err := qb.Select("*").From("balls").
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("ball_number DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return ball.Ball{}, false, fmt.Errorf("build select ledger top query: %w", err)
	}

	var row ballTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return ball.Ball{}, false, nil
		}
		return ball.Ball{}, false, fmt.Errorf("select ledger top: %w", err)
	}
	return ballFromRow(row), true, nil
}

func (r *BallRepository) PopTop(ctx context.Context, matchID string, ballNumber int) error {
	top, err := r.lockHead(ctx, matchID)
	if err != nil {
		return err
	}
	if err := checkPopAt(top, ballNumber); err != nil {
		return err
	}

	query, args, err := qb.DeleteFrom("balls").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.Eq("ball_number", ballNumber),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete ball query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete ball: %w", err)
	}

	return r.moveHead(ctx, matchID, ballNumber-1)
}

func (r *BallRepository) Count(ctx context.Context, matchID string) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("balls").
		Where(qb.Eq("match_public_id", matchID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count balls query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count balls: %w", err)
	}
	return count, nil
}

func (r *BallRepository) CountLegalByBowler(ctx context.Context, matchID, bowlerID string) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("balls").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.Eq("bowler_public_id", bowlerID),
			qb.Eq("is_legal", true),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count legal balls query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count legal balls: %w", err)
	}
	return count, nil
}

func (r *BallRepository) ListByMatch(ctx context.Context, matchID string) ([]ball.Ball, error) {
	query, args, err := qb.Select("*").From("balls").
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("ball_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list balls query: %w", err)
	}
	return r.selectBalls(ctx, query, args)
}

func (r *BallRepository) ListRecent(ctx context.Context, matchID string, limit int) ([]ball.Ball, error) {
	query, args, err := qb.Select("*").From("balls").
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("ball_number DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list recent balls query: %w", err)
	}
	return r.selectBalls(ctx, query, args)
}

func (r *BallRepository) selectBalls(ctx context.Context, query string, args []any) ([]ball.Ball, error) {
	var rows []ballTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select balls: %w", err)
	}
	out := make([]ball.Ball, 0, len(rows))
	for _, row := range rows {
		out = append(out, ballFromRow(row))
	}
	return out, nil
}

func checkAppendAt(top, ballNumber int) error {
	if ballNumber != top+1 {
		return fmt.Errorf("%w: got %d, top is %d", ball.ErrOutOfOrder, ballNumber, top)
	}
	return nil
}

func checkPopAt(top, ballNumber int) error {
	if top == 0 || top != ballNumber {
		return fmt.Errorf("%w: ball %d, top is %d", ball.ErrNotTop, ballNumber, top)
	}
	return nil
}

// headLockQueries returns the statement that creates the head row on first
// use and the row-locking read of its top.
func headLockQueries(matchID string) (ensure, lock string, ensureArgs, lockArgs []any, err error) {
	ensure, ensureArgs, err = qb.InsertInto("ball_ledger_heads").
		Columns("match_public_id", "top_ball_number").
		Values(matchID, 0).
		Suffix("ON CONFLICT (match_public_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return "", "", nil, nil, fmt.Errorf("build ensure ledger head query: %w", err)
	}
	lock, lockArgs, err = qb.Select("top_ball_number").From("ball_ledger_heads").
		Where(qb.Eq("match_public_id", matchID)).
		ForUpdate().
		ToSQL()
	if err != nil {
		return "", "", nil, nil, fmt.Errorf("build lock ledger head query: %w", err)
	}
	return ensure, lock, ensureArgs, lockArgs, nil
}

// lockHead creates the head row on first use and returns the locked top.
func (r *BallRepository) lockHead(ctx context.Context, matchID string) (int, error) {
	ensure, lock, ensureArgs, lockArgs, err := headLockQueries(matchID)
	if err != nil {
		return 0, err
	}
	if _, err := r.db.ExecContext(ctx, ensure, ensureArgs...); err != nil {
		return 0, fmt.Errorf("ensure ledger head: %w", err)
	}

	var top int
	if err := sqlx.GetContext(ctx, r.db, &top, lock, lockArgs...); err != nil {
		return 0, fmt.Errorf("lock ledger head: %w", err)
	}
	return top, nil
}

func (r *BallRepository) moveHead(ctx context.Context, matchID string, top int) error {
	query, args, err := qb.Update("ball_ledger_heads").
		Set("top_ball_number", top).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("match_public_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build move ledger head query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("move ledger head: %w", err)
	}
	return nil
}

func ballFromRow(row ballTableModel) ball.Ball {
	return ball.Ball{
		MatchID:       row.MatchID,
		BallNumber:    row.BallNumber,
		BattingTeamID: row.BattingTeamID,
		BowlingTeamID: row.BowlingTeamID,
		OverNumber:    row.OverNumber,
		BatsmanID:     row.BatsmanID,
		NonStrikerID:  row.NonStrikerID,
		BowlerID:      row.BowlerID,
		FielderID:     row.FielderID,
		Outcome:       ball.Outcome(row.Outcome),
		Runs:          row.Runs,
		Extras:        row.Extras,
		IsWicket:      row.IsWicket,
		WicketType:    ball.WicketType(row.WicketType),
		IsBoundary:    row.IsBoundary,
		IsLegal:       row.IsLegal,
		CreatedAt:     row.CreatedAt.UTC(),
	}
}
