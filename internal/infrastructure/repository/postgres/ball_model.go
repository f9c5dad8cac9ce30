package postgres

import "time"

type ballTableModel struct {
	ID            int64     `db:"id"`
	MatchID       string    `db:"match_public_id"`
	BallNumber    int       `db:"ball_number"`
	BattingTeamID string    `db:"batting_team_public_id"`
	BowlingTeamID string    `db:"bowling_team_public_id"`
	OverNumber    float64   `db:"over_number"`
	BatsmanID     string    `db:"batsman_public_id"`
	NonStrikerID  string    `db:"non_striker_public_id"`
	BowlerID      string    `db:"bowler_public_id"`
	FielderID     string    `db:"fielder_public_id"`
	Outcome       string    `db:"outcome"`
	Runs          int       `db:"runs"`
	Extras        int       `db:"extras"`
	IsWicket      bool      `db:"is_wicket"`
	WicketType    string    `db:"wicket_type"`
	IsBoundary    bool      `db:"is_boundary"`
	IsLegal       bool      `db:"is_legal"`
	CreatedAt     time.Time `db:"created_at"`
}

type ballInsertModel struct {
	MatchID       string    `db:"match_public_id"`
	BallNumber    int       `db:"ball_number"`
	BattingTeamID string    `db:"batting_team_public_id"`
	BowlingTeamID string    `db:"bowling_team_public_id"`
	OverNumber    float64   `db:"over_number"`
	BatsmanID     string    `db:"batsman_public_id"`
	NonStrikerID  string    `db:"non_striker_public_id"`
	BowlerID      string    `db:"bowler_public_id"`
	FielderID     string    `db:"fielder_public_id"`
	Outcome       string    `db:"outcome"`
	Runs          int       `db:"runs"`
	Extras        int       `db:"extras"`
	IsWicket      bool      `db:"is_wicket"`
	WicketType    string    `db:"wicket_type"`
	IsBoundary    bool      `db:"is_boundary"`
	IsLegal       bool      `db:"is_legal"`
	CreatedAt     time.Time `db:"created_at"`
}
