package postgres

import "time"

type scorecardTableModel struct {
	ID            int64     `db:"id"`
	PublicID      string    `db:"public_id"`
	MatchID       string    `db:"match_public_id"`
	PlayerID      string    `db:"player_public_id"`
	TeamID        string    `db:"team_public_id"`
	Runs          int       `db:"runs"`
	BallsFaced    int       `db:"balls_faced"`
	Fours         int       `db:"fours"`
	Sixes         int       `db:"sixes"`
	StrikeRate    float64   `db:"strike_rate"`
	IsOut         bool      `db:"is_out"`
	DismissalType string    `db:"dismissal_type"`
	OversBowled   float64   `db:"overs_bowled"`
	Wickets       int       `db:"wickets"`
	RunsConceded  int       `db:"runs_conceded"`
	Maidens       int       `db:"maidens"`
	Economy       float64   `db:"economy"`
	Catches       int       `db:"catches"`
	RunOuts       int       `db:"run_outs"`
	Stumpings     int       `db:"stumpings"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type scorecardInsertModel struct {
	PublicID      string    `db:"public_id"`
	MatchID       string    `db:"match_public_id"`
	PlayerID      string    `db:"player_public_id"`
	TeamID        string    `db:"team_public_id"`
	Runs          int       `db:"runs"`
	BallsFaced    int       `db:"balls_faced"`
	Fours         int       `db:"fours"`
	Sixes         int       `db:"sixes"`
	StrikeRate    float64   `db:"strike_rate"`
	IsOut         bool      `db:"is_out"`
	DismissalType string    `db:"dismissal_type"`
	OversBowled   float64   `db:"overs_bowled"`
	Wickets       int       `db:"wickets"`
	RunsConceded  int       `db:"runs_conceded"`
	Maidens       int       `db:"maidens"`
	Economy       float64   `db:"economy"`
	Catches       int       `db:"catches"`
	RunOuts       int       `db:"run_outs"`
	Stumpings     int       `db:"stumpings"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
