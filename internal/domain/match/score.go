package match

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/umair050/cricketApp-sub000/internal/domain/overs"
)

var ErrInvalidScoreSummary = errors.New("invalid score summary")

var (
	scoreRunsPattern  = regexp.MustCompile(`(\d+)/(\d+)`)
	scoreOversPattern = regexp.MustCompile(`\((\d+(?:\.\d+)?)\)`)
)

// ScoreSummary is the parsed form of "R/W" or "R/W (O.B)".
type ScoreSummary struct {
	Runs    int
	Wickets int
	Overs   float64
	// OversDefaulted is set when the text had no overs suffix.
	OversDefaulted bool
}

// ParseScoreSummary reads a result string. When the overs suffix is absent
// Overs is set to defaultOvers.
func ParseScoreSummary(text string, defaultOvers float64) (ScoreSummary, error) {
	text = strings.TrimSpace(text)
	runsMatch := scoreRunsPattern.FindStringSubmatch(text)
	if runsMatch == nil {
		return ScoreSummary{}, fmt.Errorf("%w: %q", ErrInvalidScoreSummary, text)
	}

	runs, err := strconv.Atoi(runsMatch[1])
	if err != nil {
		return ScoreSummary{}, fmt.Errorf("%w: runs %q", ErrInvalidScoreSummary, runsMatch[1])
	}
	wickets, err := strconv.Atoi(runsMatch[2])
	if err != nil {
		return ScoreSummary{}, fmt.Errorf("%w: wickets %q", ErrInvalidScoreSummary, runsMatch[2])
	}

	out := ScoreSummary{Runs: runs, Wickets: wickets, Overs: defaultOvers, OversDefaulted: true}
	if oversMatch := scoreOversPattern.FindStringSubmatch(text); oversMatch != nil {
		value, err := strconv.ParseFloat(oversMatch[1], 64)
		if err != nil {
			return ScoreSummary{}, fmt.Errorf("%w: overs %q", ErrInvalidScoreSummary, oversMatch[1])
		}
		out.Overs = value
		out.OversDefaulted = false
	}

	return out, nil
}

// FormatScoreSummary renders runs/wickets with the overs suffix.
func FormatScoreSummary(runs, wickets, legalBalls int) string {
	return fmt.Sprintf("%d/%d (%s)", runs, wickets, overs.FormatBalls(legalBalls))
}
