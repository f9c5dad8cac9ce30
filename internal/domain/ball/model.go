package ball

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidOutcome    = errors.New("invalid ball outcome")
	ErrInvalidWicketType = errors.New("invalid wicket type")
	ErrNegativeRuns      = errors.New("runs and extras must not be negative")
	ErrWicketMismatch    = errors.New("wicket fields are inconsistent")
	ErrSameTeams         = errors.New("batting and bowling team must differ")
)

// Outcome is what the scorer recorded for one delivery.
type Outcome string

const (
	OutcomeDot    Outcome = "dot"
	OutcomeSingle Outcome = "single"
	OutcomeDouble Outcome = "double"
	OutcomeTriple Outcome = "triple"
	OutcomeFour   Outcome = "four"
	OutcomeSix    Outcome = "six"
	OutcomeWide   Outcome = "wide"
	OutcomeNoBall Outcome = "no_ball"
	OutcomeBye    Outcome = "bye"
	OutcomeLegBye Outcome = "leg_bye"
	OutcomeWicket Outcome = "wicket"
)

var allOutcomes = map[Outcome]struct{}{
	OutcomeDot: {}, OutcomeSingle: {}, OutcomeDouble: {}, OutcomeTriple: {},
	OutcomeFour: {}, OutcomeSix: {}, OutcomeWide: {}, OutcomeNoBall: {},
	OutcomeBye: {}, OutcomeLegBye: {}, OutcomeWicket: {},
}

// WicketType is the mode of dismissal.
type WicketType string

const (
	WicketBowled          WicketType = "bowled"
	WicketCaught          WicketType = "caught"
	WicketLBW             WicketType = "lbw"
	WicketRunOut          WicketType = "run_out"
	WicketStumped         WicketType = "stumped"
	WicketHitWicket       WicketType = "hit_wicket"
	WicketCaughtAndBowled WicketType = "caught_and_bowled"
	WicketRetiredHurt     WicketType = "retired_hurt"
)

var allWicketTypes = map[WicketType]struct{}{
	WicketBowled: {}, WicketCaught: {}, WicketLBW: {}, WicketRunOut: {},
	WicketStumped: {}, WicketHitWicket: {}, WicketCaughtAndBowled: {}, WicketRetiredHurt: {},
}

// Ball is one delivery in a match ledger. BallNumber is contiguous from 1.
type Ball struct {
	MatchID       string
	BallNumber    int
	BattingTeamID string
	BowlingTeamID string
	OverNumber    float64
	BatsmanID     string
	NonStrikerID  string
	BowlerID      string
	FielderID     string
	Outcome       Outcome
	Runs          int
	Extras        int
	IsWicket      bool
	WicketType    WicketType
	IsBoundary    bool
	IsLegal       bool
	CreatedAt     time.Time
}

// IsLegalOutcome reports whether a delivery counts toward the over.
func IsLegalOutcome(outcome Outcome) bool {
	return outcome != OutcomeWide && outcome != OutcomeNoBall
}

// IsBoundaryRuns reports whether the batsman's runs were a four or a six.
func IsBoundaryRuns(runs int) bool {
	return runs == 4 || runs == 6
}

// TotalRuns is what the delivery adds to the batting team's total.
func (b Ball) TotalRuns() int {
	return b.Runs + b.Extras
}

// Normalize trims identifiers and fills the derived flags.
func (b Ball) Normalize() Ball {
	b.MatchID = strings.TrimSpace(b.MatchID)
	b.BattingTeamID = strings.TrimSpace(b.BattingTeamID)
	b.BowlingTeamID = strings.TrimSpace(b.BowlingTeamID)
	b.BatsmanID = strings.TrimSpace(b.BatsmanID)
	b.NonStrikerID = strings.TrimSpace(b.NonStrikerID)
	b.BowlerID = strings.TrimSpace(b.BowlerID)
	b.FielderID = strings.TrimSpace(b.FielderID)
	b.Outcome = Outcome(strings.ToLower(strings.TrimSpace(string(b.Outcome))))
	b.WicketType = WicketType(strings.ToLower(strings.TrimSpace(string(b.WicketType))))
	b.IsLegal = IsLegalOutcome(b.Outcome)
	b.IsBoundary = IsBoundaryRuns(b.Runs)
	return b
}

// Validate checks the delivery payload. It does not check ledger position.
func (b Ball) Validate() error {
	if b.MatchID == "" {
		return fmt.Errorf("match id is required")
	}
	if b.BattingTeamID == "" || b.BowlingTeamID == "" {
		return fmt.Errorf("batting and bowling team ids are required")
	}
	if b.BattingTeamID == b.BowlingTeamID {
		return ErrSameTeams
	}
	if b.BatsmanID == "" {
		return fmt.Errorf("batsman id is required")
	}
	if b.BowlerID == "" {
		return fmt.Errorf("bowler id is required")
	}
	if _, ok := allOutcomes[b.Outcome]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, b.Outcome)
	}
	if b.Runs < 0 || b.Extras < 0 {
		return ErrNegativeRuns
	}
	if b.OverNumber < 0 {
		return fmt.Errorf("over number must not be negative")
	}
	if b.WicketType != "" {
		if _, ok := allWicketTypes[b.WicketType]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidWicketType, b.WicketType)
		}
		if !b.IsWicket {
			return fmt.Errorf("%w: wicket type without wicket", ErrWicketMismatch)
		}
	}
	if b.Outcome == OutcomeWicket && !b.IsWicket {
		return fmt.Errorf("%w: wicket outcome without wicket", ErrWicketMismatch)
	}

	return nil
}
