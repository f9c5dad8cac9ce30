package tournament

import (
	"sort"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/platform/numeric"
)

const PointsPerWin = 2

// Standing is one team's row in a tournament points table.
type Standing struct {
	TournamentID  string
	TeamID        string
	GroupID       string
	Points        int
	NetRunRate    float64
	MatchesPlayed int
	Wins          int
	Losses        int
	Draws         int
	NoResults     int
	RunsScored    int
	RunsConceded  int
	OversFaced    float64
	OversBowled   float64
	IsQualified   bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewStanding(tournamentID, teamID string) Standing {
	return Standing{TournamentID: tournamentID, TeamID: teamID, IsActive: true}
}

// RecordResult folds one completed match into the row. Overs are added as
// plain reals, matching how results are reported.
func (s *Standing) RecordResult(won bool, own, opponent match.ScoreSummary) {
	s.MatchesPlayed++
	if won {
		s.Wins++
		s.Points += PointsPerWin
	} else {
		s.Losses++
	}

	s.RunsScored += own.Runs
	s.RunsConceded += opponent.Runs
	s.OversFaced += own.Overs
	s.OversBowled += opponent.Overs
	s.recomputeNetRunRate()
}

func (s *Standing) recomputeNetRunRate() {
	if s.OversFaced <= 0 || s.OversBowled <= 0 {
		return
	}
	forRate := float64(s.RunsScored) / s.OversFaced
	againstRate := float64(s.RunsConceded) / s.OversBowled
	s.NetRunRate = numeric.Round(forRate-againstRate, 3)
}

// Rank orders rows by points, then net run rate, then wins, then team id.
func Rank(rows []Standing) []Standing {
	out := append([]Standing(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.NetRunRate != b.NetRunRate {
			return a.NetRunRate > b.NetRunRate
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.TeamID < b.TeamID
	})
	return out
}
