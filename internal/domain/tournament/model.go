package tournament

import (
	"fmt"
	"time"
)

// Tournament is owned by the profile service; this core only reads its
// start date and overs limit.
type Tournament struct {
	ID         string
	Name       string
	StartDate  time.Time
	OversLimit int
	CreatedAt  time.Time
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.OversLimit <= 0 {
		return fmt.Errorf("tournament overs limit must be greater than zero")
	}
	return nil
}

// Group is a round-robin pool inside a tournament.
type Group struct {
	ID              string
	TournamentID    string
	Name            string
	MaxTeams        int
	QualifyingTeams int
	CreatedAt       time.Time
}

func (g Group) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("group id is required")
	}
	if g.TournamentID == "" {
		return fmt.Errorf("group tournament id is required")
	}
	if g.Name == "" {
		return fmt.Errorf("group name is required")
	}
	if g.MaxTeams < 0 || g.QualifyingTeams < 0 {
		return fmt.Errorf("group team limits must not be negative")
	}
	if g.MaxTeams > 0 && g.QualifyingTeams > g.MaxTeams {
		return fmt.Errorf("qualifying teams cannot exceed max teams")
	}
	return nil
}

// Pairing is one fixture to be created, TeamA hosting TeamB.
type Pairing struct {
	TeamAID string
	TeamBID string
}
