package leaderboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
)

const MatchTopN = 3

var ErrInvalidKind = errors.New("invalid leaderboard type")

// Kind selects which tournament leaderboard to build.
type Kind string

const (
	KindBatting Kind = "batting"
	KindBowling Kind = "bowling"
)

func ParseKind(raw string) (Kind, error) {
	switch kind := Kind(strings.ToLower(strings.TrimSpace(raw))); kind {
	case KindBatting, KindBowling:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, raw)
	}
}

type MatchLeaderboard struct {
	MatchID     string
	TopBatsmen  []scorecard.Scorecard
	TopBowlers  []scorecard.Scorecard
	BestFielder *scorecard.Scorecard
}

type BattingEntry struct {
	PlayerID     string
	Matches      int
	Runs         int
	BallsFaced   int
	Fours        int
	Sixes        int
	Fifties      int
	Hundreds     int
	HighestScore int
	Average      float64
	StrikeRate   float64
}

type BowlingEntry struct {
	PlayerID     string
	Matches      int
	Wickets      int
	Overs        float64
	RunsConceded int
	Maidens      int
	BestWickets  int
	Average      float64
	Economy      float64
}

type TournamentLeaderboard struct {
	TournamentID string
	Kind         Kind
	Batting      []BattingEntry
	Bowling      []BowlingEntry
}
