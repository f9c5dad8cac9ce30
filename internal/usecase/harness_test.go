package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/leaderboard"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/infrastructure/repository/memory"
	"github.com/umair050/cricketApp-sub000/internal/platform/cache"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
	"github.com/umair050/cricketApp-sub000/internal/platform/resilience"
)

var testNow = time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type sequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

type testEnv struct {
	store       *memory.Store
	ledger      *LedgerService
	matches     *MatchService
	scores      *ScoreService
	points      *PointsTableService
	leaderboard *LeaderboardService
	schedule    *ScheduleService
	tournaments *TournamentService
}

// newTestEnv wires every service over a seeded in-memory store with a frozen
// clock and predictable ids.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	if err := store.Seed(t.Context(), memory.SeedTournaments()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	teams := memory.NewTeamDirectory(memory.SeedTeams())
	players := memory.NewPlayerDirectory(memory.SeedPlayers())
	logger := logging.NewNop()
	locks := resilience.NewKeyLock()

	aggregator := NewScorecardAggregator(&sequenceIDGenerator{prefix: "card"})
	aggregator.now = fixedClock

	points := NewPointsTableService(store, logger)
	points.now = fixedClock

	boards := NewLeaderboardService(store, cache.NewStore[leaderboard.TournamentLeaderboard](time.Minute), 2, logger)

	ledger := NewLedgerService(store, players, aggregator, locks, logger)
	ledger.now = fixedClock

	matches := NewMatchService(store, teams, players, points, locks, boards, &sequenceIDGenerator{prefix: "match"}, logger)
	matches.now = fixedClock

	schedule := NewScheduleService(store, teams, &sequenceIDGenerator{prefix: "fixture"}, DefaultScheduleConfig(), logger)
	schedule.now = fixedClock

	tournaments := NewTournamentService(store, teams, &sequenceIDGenerator{prefix: "group"}, logger)
	tournaments.now = fixedClock

	return &testEnv{
		store:       store,
		ledger:      ledger,
		matches:     matches,
		scores:      NewScoreService(store),
		points:      points,
		leaderboard: boards,
		schedule:    schedule,
		tournaments: tournaments,
	}
}

func (e *testEnv) createFriendly(t *testing.T) match.Match {
	t.Helper()

	m, err := e.matches.CreateMatch(t.Context(), CreateMatchInput{
		TeamAID: "lhr-lions",
		TeamBID: "kch-kings",
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	return m
}

func (e *testEnv) createTournamentMatch(t *testing.T, teamA, teamB string) match.Match {
	t.Helper()

	m, err := e.matches.CreateMatch(t.Context(), CreateMatchInput{
		TournamentID: memory.TournamentIDCityT20,
		Stage:        match.StageGroup,
		TeamAID:      teamA,
		TeamBID:      teamB,
	})
	if err != nil {
		t.Fatalf("create tournament match: %v", err)
	}
	return m
}

// delivery builds a ball bowled by the Karachi bowler at the Lahore openers.
func delivery(outcome ball.Outcome, runs, extras int) DeliveryInput {
	return DeliveryInput{
		BattingTeamID: "lhr-lions",
		BowlingTeamID: "kch-kings",
		BatsmanID:     "lhr-lions-bat-1",
		NonStrikerID:  "lhr-lions-bat-2",
		BowlerID:      "kch-kings-bowl-1",
		Outcome:       outcome,
		Runs:          runs,
		Extras:        extras,
	}
}

// cardStats strips identity and timestamps so cards can be compared by value.
func cardStats(cards []scorecard.Scorecard) map[scorecard.Key]scorecard.Scorecard {
	out := make(map[scorecard.Key]scorecard.Scorecard, len(cards))
	for _, card := range cards {
		card.ID = ""
		card.CreatedAt = time.Time{}
		card.UpdatedAt = time.Time{}
		out[card.Key()] = card
	}
	return out
}
