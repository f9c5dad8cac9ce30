package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID                 int64          `db:"id"`
	PublicID           string         `db:"public_id"`
	MatchType          string         `db:"match_type"`
	TournamentID       sql.NullString `db:"tournament_public_id"`
	GroupID            sql.NullString `db:"group_public_id"`
	Stage              string         `db:"stage"`
	TeamAID            string         `db:"team_a_public_id"`
	TeamBID            string         `db:"team_b_public_id"`
	ScheduledAt        time.Time      `db:"scheduled_at"`
	OversLimit         int            `db:"overs_limit"`
	Status             string         `db:"status"`
	WinnerTeamID       string         `db:"winner_team_public_id"`
	TeamAScore         string         `db:"team_a_score"`
	TeamBScore         string         `db:"team_b_score"`
	ManOfMatchPlayerID string         `db:"man_of_match_public_id"`
	IsDeleted          bool           `db:"is_deleted"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

type matchInsertModel struct {
	PublicID           string         `db:"public_id"`
	MatchType          string         `db:"match_type"`
	TournamentID       sql.NullString `db:"tournament_public_id"`
	GroupID            sql.NullString `db:"group_public_id"`
	Stage              string         `db:"stage"`
	TeamAID            string         `db:"team_a_public_id"`
	TeamBID            string         `db:"team_b_public_id"`
	ScheduledAt        time.Time      `db:"scheduled_at"`
	OversLimit         int            `db:"overs_limit"`
	Status             string         `db:"status"`
	WinnerTeamID       string         `db:"winner_team_public_id"`
	TeamAScore         string         `db:"team_a_score"`
	TeamBScore         string         `db:"team_b_score"`
	ManOfMatchPlayerID string         `db:"man_of_match_public_id"`
	IsDeleted          bool           `db:"is_deleted"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// matchUpdateModel holds the columns a match may change after creation.
type matchUpdateModel struct {
	Status             string    `db:"status"`
	WinnerTeamID       string    `db:"winner_team_public_id"`
	TeamAScore         string    `db:"team_a_score"`
	TeamBScore         string    `db:"team_b_score"`
	ManOfMatchPlayerID string    `db:"man_of_match_public_id"`
	IsDeleted          bool      `db:"is_deleted"`
	UpdatedAt          time.Time `db:"updated_at"`
}
