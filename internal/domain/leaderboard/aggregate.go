package leaderboard

import (
	"sort"

	"github.com/umair050/cricketApp-sub000/internal/domain/overs"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/platform/numeric"
)

// ForMatch picks the top three batsmen and bowlers and the best fielder.
func ForMatch(matchID string, cards []scorecard.Scorecard) MatchLeaderboard {
	out := MatchLeaderboard{MatchID: matchID}

	batsmen := make([]scorecard.Scorecard, 0, len(cards))
	bowlers := make([]scorecard.Scorecard, 0, len(cards))
	var best *scorecard.Scorecard
	for i := range cards {
		card := cards[i]
		if card.BallsFaced > 0 {
			batsmen = append(batsmen, card)
		}
		if card.OversBowled > 0 {
			bowlers = append(bowlers, card)
		}
		if total := card.FieldingTotal(); total > 0 {
			if best == nil || total > best.FieldingTotal() ||
				(total == best.FieldingTotal() && card.PlayerID < best.PlayerID) {
				picked := card
				best = &picked
			}
		}
	}

	sort.SliceStable(batsmen, func(i, j int) bool {
		a, b := batsmen[i], batsmen[j]
		if a.Runs != b.Runs {
			return a.Runs > b.Runs
		}
		if a.BallsFaced != b.BallsFaced {
			return a.BallsFaced < b.BallsFaced
		}
		return a.PlayerID < b.PlayerID
	})
	sort.SliceStable(bowlers, func(i, j int) bool {
		a, b := bowlers[i], bowlers[j]
		if a.Wickets != b.Wickets {
			return a.Wickets > b.Wickets
		}
		if a.Economy != b.Economy {
			return a.Economy < b.Economy
		}
		return a.PlayerID < b.PlayerID
	})

	out.TopBatsmen = head(batsmen, MatchTopN)
	out.TopBowlers = head(bowlers, MatchTopN)
	out.BestFielder = best
	return out
}

// Batting aggregates batting figures per player across cards from
// completed matches.
func Batting(cards []scorecard.Scorecard) []BattingEntry {
	index := make(map[string]int)
	out := make([]BattingEntry, 0)
	for _, card := range cards {
		if !card.HasBatted() {
			continue
		}
		pos, ok := index[card.PlayerID]
		if !ok {
			pos = len(out)
			index[card.PlayerID] = pos
			out = append(out, BattingEntry{PlayerID: card.PlayerID})
		}
		entry := &out[pos]
		entry.Matches++
		entry.Runs += card.Runs
		entry.BallsFaced += card.BallsFaced
		entry.Fours += card.Fours
		entry.Sixes += card.Sixes
		switch {
		case card.Runs >= 100:
			entry.Hundreds++
		case card.Runs >= 50:
			entry.Fifties++
		}
		if card.Runs > entry.HighestScore {
			entry.HighestScore = card.Runs
		}
	}

	for i := range out {
		out[i].Average = numeric.Ratio(float64(out[i].Runs), float64(out[i].Matches), 2)
		out[i].StrikeRate = numeric.Ratio(float64(out[i].Runs)*100, float64(out[i].BallsFaced), 2)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Runs != out[j].Runs {
			return out[i].Runs > out[j].Runs
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

// Bowling aggregates bowling figures per player. Overs are summed through
// legal-ball counts so partial overs carry correctly.
func Bowling(cards []scorecard.Scorecard) []BowlingEntry {
	index := make(map[string]int)
	balls := make([]int, 0)
	out := make([]BowlingEntry, 0)
	for _, card := range cards {
		if !card.HasBowled() {
			continue
		}
		pos, ok := index[card.PlayerID]
		if !ok {
			pos = len(out)
			index[card.PlayerID] = pos
			out = append(out, BowlingEntry{PlayerID: card.PlayerID})
			balls = append(balls, 0)
		}
		entry := &out[pos]
		entry.Matches++
		entry.Wickets += card.Wickets
		entry.RunsConceded += card.RunsConceded
		entry.Maidens += card.Maidens
		balls[pos] += overs.ToBalls(card.OversBowled)
		if card.Wickets > entry.BestWickets {
			entry.BestWickets = card.Wickets
		}
	}

	for i := range out {
		out[i].Overs = overs.FromBalls(balls[i])
		out[i].Average = numeric.Ratio(float64(out[i].RunsConceded), float64(out[i].Wickets), 2)
		out[i].Economy = numeric.Ratio(float64(out[i].RunsConceded), out[i].Overs, 2)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wickets != out[j].Wickets {
			return out[i].Wickets > out[j].Wickets
		}
		if out[i].Economy != out[j].Economy {
			return out[i].Economy < out[j].Economy
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func head(cards []scorecard.Scorecard, n int) []scorecard.Scorecard {
	if len(cards) > n {
		cards = cards[:n]
	}
	return append([]scorecard.Scorecard(nil), cards...)
}
