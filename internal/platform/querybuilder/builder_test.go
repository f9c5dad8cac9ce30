package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("match_id", "ball_number").
		From("balls").
		Where(Eq("match_id", "m1"), Expr("ball_number > ?", 3)).
		OrderBy("ball_number DESC").
		Limit(6).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT match_id, ball_number FROM balls WHERE match_id = $1 AND ball_number > $2 ORDER BY ball_number DESC LIMIT 6"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "m1" || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderForUpdate(t *testing.T) {
	query, _, err := Select("top_ball_number").
		From("ball_ledger_heads").
		Where(Eq("match_id", "m1")).
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT top_ball_number FROM ball_ledger_heads WHERE match_id = $1 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("public_id", "name").
		Values("t1", "Lahore Lions").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (public_id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "t1" || args[1] != "Lahore Lions" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("matches").
		Set("status", "live").
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "m1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE matches SET status = $1, updated_at = NOW() WHERE public_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "live" || args[1] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("balls").
		Where(Eq("match_id", "m1"), Eq("ball_number", 12)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM balls WHERE match_id = $1 AND ball_number = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != 12 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("balls").ToSQL(); err == nil {
		t.Fatalf("expected unconditioned delete to be rejected")
	}
}

type upsertRow struct {
	TournamentID string `db:"tournament_public_id"`
	TeamID       string `db:"team_public_id"`
	Points       int    `db:"points"`
	internal     int
	Skipped      string `db:"-"`
}

func TestUpsertModel(t *testing.T) {
	query, args, err := UpsertModel("tournament_standings", upsertRow{TournamentID: "t1", TeamID: "a", Points: 2}, "tournament_public_id", "team_public_id")
	if err != nil {
		t.Fatalf("build upsert query: %v", err)
	}

	wantQuery := "INSERT INTO tournament_standings (tournament_public_id, team_public_id, points) VALUES ($1, $2, $3) " +
		"ON CONFLICT (tournament_public_id, team_public_id) DO UPDATE SET points = EXCLUDED.points"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateModel(t *testing.T) {
	query, args, err := UpdateModel("tournament_standings", upsertRow{TournamentID: "t1", TeamID: "a", Points: 4}, Eq("id", int64(9)))
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE tournament_standings SET tournament_public_id = $1, team_public_id = $2, points = $3 WHERE id = $4"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderSetExprBindsArgs(t *testing.T) {
	query, args, err := Update("ball_ledger_heads").
		SetExpr("top_ball_number", "top_ball_number + ?", 1).
		Set("updated_by", "scorer").
		Where(Eq("match_public_id", "m1"), Expr("top_ball_number >= ?", 0)).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE ball_ledger_heads SET top_ball_number = top_ball_number + $1, updated_by = $2 WHERE match_public_id = $3 AND top_ball_number >= $4"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != 1 || args[3] != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
