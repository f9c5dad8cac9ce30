package scorecard

import (
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/overs"
	"github.com/umair050/cricketApp-sub000/internal/platform/numeric"
)

// Key identifies one player's card for one side in one match.
type Key struct {
	MatchID  string
	PlayerID string
	TeamID   string
}

// Scorecard holds a player's running batting, bowling and fielding figures
// for a match. Counters never go below zero.
type Scorecard struct {
	ID       string
	MatchID  string
	PlayerID string
	TeamID   string

	Runs          int
	BallsFaced    int
	Fours         int
	Sixes         int
	StrikeRate    float64
	IsOut         bool
	DismissalType ball.WicketType

	OversBowled  float64
	Wickets      int
	RunsConceded int
	Maidens      int
	Economy      float64

	Catches   int
	RunOuts   int
	Stumpings int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(key Key) Scorecard {
	return Scorecard{MatchID: key.MatchID, PlayerID: key.PlayerID, TeamID: key.TeamID}
}

func (s Scorecard) Key() Key {
	return Key{MatchID: s.MatchID, PlayerID: s.PlayerID, TeamID: s.TeamID}
}

// ApplyBatting credits the striker with one delivery.
func (s *Scorecard) ApplyBatting(b ball.Ball) {
	if b.IsLegal {
		s.BallsFaced++
	}
	s.Runs += b.Runs
	switch b.Runs {
	case 4:
		s.Fours++
	case 6:
		s.Sixes++
	}
	if b.IsWicket {
		s.IsOut = true
		s.DismissalType = b.WicketType
	}
	s.recomputeStrikeRate()
}

// RevertBatting undoes ApplyBatting for the same delivery.
func (s *Scorecard) RevertBatting(b ball.Ball) {
	if b.IsLegal {
		s.BallsFaced = decrement(s.BallsFaced, 1)
	}
	s.Runs = decrement(s.Runs, b.Runs)
	switch b.Runs {
	case 4:
		s.Fours = decrement(s.Fours, 1)
	case 6:
		s.Sixes = decrement(s.Sixes, 1)
	}
	if b.IsWicket {
		s.IsOut = false
		s.DismissalType = ""
	}
	s.recomputeStrikeRate()
}

// ApplyBowling charges the bowler for one delivery. legalBalls is the
// bowler's legal-ball count in the match including this delivery.
func (s *Scorecard) ApplyBowling(b ball.Ball, legalBalls int) {
	s.OversBowled = overs.FromBalls(legalBalls)
	s.RunsConceded += b.TotalRuns()
	if b.IsWicket {
		s.Wickets++
	}
	s.recomputeEconomy()
}

// RevertBowling undoes ApplyBowling. legalBalls is the bowler's count with
// this delivery excluded.
func (s *Scorecard) RevertBowling(b ball.Ball, legalBalls int) {
	s.OversBowled = overs.FromBalls(legalBalls)
	s.RunsConceded = decrement(s.RunsConceded, b.TotalRuns())
	if b.IsWicket {
		s.Wickets = decrement(s.Wickets, 1)
	}
	s.recomputeEconomy()
}

// ApplyFielding credits the fielder named by FielderFor.
func (s *Scorecard) ApplyFielding(b ball.Ball) {
	switch b.WicketType {
	case ball.WicketCaught, ball.WicketCaughtAndBowled:
		s.Catches++
	case ball.WicketRunOut:
		s.RunOuts++
	case ball.WicketStumped:
		s.Stumpings++
	}
}

func (s *Scorecard) RevertFielding(b ball.Ball) {
	switch b.WicketType {
	case ball.WicketCaught, ball.WicketCaughtAndBowled:
		s.Catches = decrement(s.Catches, 1)
	case ball.WicketRunOut:
		s.RunOuts = decrement(s.RunOuts, 1)
	case ball.WicketStumped:
		s.Stumpings = decrement(s.Stumpings, 1)
	}
}

// FielderFor returns the player credited in the field for a dismissal, if any.
// A caught-and-bowled without an explicit fielder goes to the bowler.
func FielderFor(b ball.Ball) (string, bool) {
	if !b.IsWicket {
		return "", false
	}
	switch b.WicketType {
	case ball.WicketCaught, ball.WicketRunOut, ball.WicketStumped:
		return b.FielderID, b.FielderID != ""
	case ball.WicketCaughtAndBowled:
		if b.FielderID != "" {
			return b.FielderID, true
		}
		return b.BowlerID, b.BowlerID != ""
	default:
		return "", false
	}
}

func (s Scorecard) FieldingTotal() int {
	return s.Catches + s.RunOuts + s.Stumpings
}

func (s Scorecard) HasBatted() bool {
	return s.BallsFaced > 0 || s.Runs > 0 || s.IsOut
}

func (s Scorecard) HasBowled() bool {
	return s.OversBowled > 0 || s.Wickets > 0 || s.RunsConceded > 0
}

// IsEmpty reports whether every counter is back at zero.
func (s Scorecard) IsEmpty() bool {
	return !s.HasBatted() && !s.HasBowled() && s.FieldingTotal() == 0 && s.Maidens == 0
}

func (s *Scorecard) recomputeStrikeRate() {
	s.StrikeRate = numeric.Ratio(float64(s.Runs)*100, float64(s.BallsFaced), 2)
}

func (s *Scorecard) recomputeEconomy() {
	s.Economy = numeric.Ratio(float64(s.RunsConceded), s.OversBowled, 2)
}

func decrement(value, by int) int {
	if value-by < 0 {
		return 0
	}
	return value - by
}
