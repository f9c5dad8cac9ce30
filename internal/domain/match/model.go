package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DefaultOversLimit = 20

var (
	ErrSelfPlay         = errors.New("a team cannot play against itself")
	ErrInvalidType      = errors.New("invalid match type")
	ErrInvalidStage     = errors.New("invalid match stage")
	ErrInvalidStatus    = errors.New("invalid match status")
	ErrWinnerNotInMatch = errors.New("winner must be one of the match teams")
)

type Type string

const (
	TypeFriendly   Type = "friendly"
	TypeTournament Type = "tournament"
)

type Stage string

const (
	StageGroup        Stage = "group"
	StageQuarterFinal Stage = "quarter_final"
	StageSemiFinal    Stage = "semi_final"
	StageFinal        Stage = "final"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Match is a fixture between two teams. Balls and scorecards hang off its ID.
type Match struct {
	ID           string
	Type         Type
	TournamentID string
	GroupID      string
	Stage        Stage
	TeamAID      string
	TeamBID      string
	ScheduledAt  time.Time
	OversLimit   int
	Status       Status
	WinnerTeamID string
	TeamAScore   string
	TeamBScore   string
	ManOfMatchID string
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TeamAID == "" || m.TeamBID == "" {
		return fmt.Errorf("both team ids are required")
	}
	if m.TeamAID == m.TeamBID {
		return ErrSelfPlay
	}
	switch m.Type {
	case TypeFriendly:
	case TypeTournament:
		if m.TournamentID == "" {
			return fmt.Errorf("tournament id is required for tournament matches")
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidType, m.Type)
	}
	switch m.Stage {
	case "", StageGroup, StageQuarterFinal, StageSemiFinal, StageFinal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStage, m.Stage)
	}
	switch m.Status {
	case StatusScheduled, StatusLive, StatusCompleted, StatusCancelled:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, m.Status)
	}
	if m.OversLimit <= 0 {
		return fmt.Errorf("overs limit must be greater than zero")
	}

	return nil
}

// IsClosed reports whether the match no longer accepts deliveries or results.
func (m Match) IsClosed() bool {
	return m.Status == StatusCompleted || m.Status == StatusCancelled
}

// HasTeam reports whether teamID plays in this match.
func (m Match) HasTeam(teamID string) bool {
	return teamID != "" && (teamID == m.TeamAID || teamID == m.TeamBID)
}

// Opponent returns the other side for teamID.
func (m Match) Opponent(teamID string) string {
	if teamID == m.TeamAID {
		return m.TeamBID
	}
	return m.TeamAID
}

// CountsForStandings reports whether completing this match moves the points table.
func (m Match) CountsForStandings() bool {
	return m.Type == TypeTournament && m.TournamentID != "" && m.Status == StatusCompleted && m.WinnerTeamID != ""
}
