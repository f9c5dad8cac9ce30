package postgres

import "time"

type tournamentTableModel struct {
	ID         int64     `db:"id"`
	PublicID   string    `db:"public_id"`
	Name       string    `db:"name"`
	StartDate  time.Time `db:"start_date"`
	OversLimit int       `db:"overs_limit"`
	CreatedAt  time.Time `db:"created_at"`
}

type tournamentInsertModel struct {
	PublicID   string    `db:"public_id"`
	Name       string    `db:"name"`
	StartDate  time.Time `db:"start_date"`
	OversLimit int       `db:"overs_limit"`
	CreatedAt  time.Time `db:"created_at"`
}

type groupTableModel struct {
	ID              int64     `db:"id"`
	PublicID        string    `db:"public_id"`
	TournamentID    string    `db:"tournament_public_id"`
	Name            string    `db:"name"`
	MaxTeams        int       `db:"max_teams"`
	QualifyingTeams int       `db:"qualifying_teams"`
	CreatedAt       time.Time `db:"created_at"`
}

type groupInsertModel struct {
	PublicID        string    `db:"public_id"`
	TournamentID    string    `db:"tournament_public_id"`
	Name            string    `db:"name"`
	MaxTeams        int       `db:"max_teams"`
	QualifyingTeams int       `db:"qualifying_teams"`
	CreatedAt       time.Time `db:"created_at"`
}

type standingTableModel struct {
	ID            int64     `db:"id"`
	TournamentID  string    `db:"tournament_public_id"`
	TeamID        string    `db:"team_public_id"`
	GroupID       string    `db:"group_public_id"`
	Points        int       `db:"points"`
	NetRunRate    float64   `db:"net_run_rate"`
	MatchesPlayed int       `db:"matches_played"`
	Wins          int       `db:"wins"`
	Losses        int       `db:"losses"`
	Draws         int       `db:"draws"`
	NoResults     int       `db:"no_results"`
	RunsScored    int       `db:"runs_scored"`
	RunsConceded  int       `db:"runs_conceded"`
	OversFaced    float64   `db:"overs_faced"`
	OversBowled   float64   `db:"overs_bowled"`
	IsQualified   bool      `db:"is_qualified"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type standingInsertModel struct {
	TournamentID  string    `db:"tournament_public_id"`
	TeamID        string    `db:"team_public_id"`
	GroupID       string    `db:"group_public_id"`
	Points        int       `db:"points"`
	NetRunRate    float64   `db:"net_run_rate"`
	MatchesPlayed int       `db:"matches_played"`
	Wins          int       `db:"wins"`
	Losses        int       `db:"losses"`
	Draws         int       `db:"draws"`
	NoResults     int       `db:"no_results"`
	RunsScored    int       `db:"runs_scored"`
	RunsConceded  int       `db:"runs_conceded"`
	OversFaced    float64   `db:"overs_faced"`
	OversBowled   float64   `db:"overs_bowled"`
	IsQualified   bool      `db:"is_qualified"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
