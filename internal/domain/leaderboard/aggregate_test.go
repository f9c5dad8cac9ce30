package leaderboard

import (
	"errors"
	"testing"

	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
)

func TestForMatch(t *testing.T) {
	t.Parallel()

	cards := []scorecard.Scorecard{
		{PlayerID: "bat-1", Runs: 45, BallsFaced: 30},
		{PlayerID: "bat-2", Runs: 45, BallsFaced: 28},
		{PlayerID: "bat-3", Runs: 12, BallsFaced: 10},
		{PlayerID: "bat-4", Runs: 70, BallsFaced: 41},
		{PlayerID: "bowl-1", OversBowled: 4, Wickets: 2, Economy: 7.5, Catches: 1},
		{PlayerID: "bowl-2", OversBowled: 4, Wickets: 2, Economy: 6.25},
		{PlayerID: "bowl-3", OversBowled: 3.2, Wickets: 3, Economy: 9.1},
		{PlayerID: "bowl-4", OversBowled: 1, Wickets: 0, Economy: 4},
		{PlayerID: "keeper", Catches: 1, Stumpings: 1},
		{PlayerID: "idle"},
	}

	got := ForMatch("m1", cards)

	wantBatsmen := []string{"bat-4", "bat-2", "bat-1"}
	if len(got.TopBatsmen) != 3 {
		t.Fatalf("expected 3 batsmen, got %d", len(got.TopBatsmen))
	}
	for i, id := range wantBatsmen {
		if got.TopBatsmen[i].PlayerID != id {
			t.Fatalf("batsman %d: want %s got %s", i, id, got.TopBatsmen[i].PlayerID)
		}
	}

	wantBowlers := []string{"bowl-3", "bowl-2", "bowl-1"}
	for i, id := range wantBowlers {
		if got.TopBowlers[i].PlayerID != id {
			t.Fatalf("bowler %d: want %s got %s", i, id, got.TopBowlers[i].PlayerID)
		}
	}

	if got.BestFielder == nil || got.BestFielder.PlayerID != "keeper" {
		t.Fatalf("unexpected best fielder: %+v", got.BestFielder)
	}
}

func TestForMatchWithoutFielding(t *testing.T) {
	t.Parallel()

	got := ForMatch("m1", []scorecard.Scorecard{{PlayerID: "bat-1", Runs: 4, BallsFaced: 1}})
	if got.BestFielder != nil {
		t.Fatalf("expected no best fielder, got %+v", got.BestFielder)
	}
	if len(got.TopBowlers) != 0 {
		t.Fatalf("expected no bowlers, got %d", len(got.TopBowlers))
	}
}

func TestBatting(t *testing.T) {
	t.Parallel()

	cards := []scorecard.Scorecard{
		{PlayerID: "p1", Runs: 55, BallsFaced: 40, Fours: 5, Sixes: 1},
		{PlayerID: "p1", Runs: 101, BallsFaced: 60, Fours: 10, Sixes: 3},
		{PlayerID: "p1", Runs: 0, BallsFaced: 1, IsOut: true},
		{PlayerID: "p2", Runs: 30, BallsFaced: 24},
		{PlayerID: "p3", OversBowled: 4},
	}

	got := Batting(cards)
	if len(got) != 2 {
		t.Fatalf("expected 2 batting entries, got %d", len(got))
	}
	p1 := got[0]
	if p1.PlayerID != "p1" || p1.Runs != 156 || p1.Matches != 3 || p1.BallsFaced != 101 {
		t.Fatalf("unexpected p1 entry: %+v", p1)
	}
	if p1.Fifties != 1 || p1.Hundreds != 1 || p1.HighestScore != 101 {
		t.Fatalf("unexpected milestones: %+v", p1)
	}
	if p1.Average != 52 {
		t.Fatalf("unexpected average: %v", p1.Average)
	}
	if got[1].StrikeRate != 125 {
		t.Fatalf("unexpected p2 strike rate: %v", got[1].StrikeRate)
	}
}

func TestBowling(t *testing.T) {
	t.Parallel()

	cards := []scorecard.Scorecard{
		{PlayerID: "b1", OversBowled: 3.4, Wickets: 2, RunsConceded: 20},
		{PlayerID: "b1", OversBowled: 2.2, Wickets: 1, RunsConceded: 18},
		{PlayerID: "b2", OversBowled: 4, Wickets: 3, RunsConceded: 40},
		{PlayerID: "bat", Runs: 10, BallsFaced: 8},
	}

	got := Bowling(cards)
	if len(got) != 2 {
		t.Fatalf("expected 2 bowling entries, got %d", len(got))
	}
	// b2 and b1 both on 3 wickets; b1 has the lower economy.
	b1 := got[0]
	if b1.PlayerID != "b1" {
		t.Fatalf("expected b1 first, got %s", b1.PlayerID)
	}
	if b1.Overs != 6.0 {
		t.Fatalf("expected 3.4 + 2.2 = 6.0 overs, got %v", b1.Overs)
	}
	if b1.Economy != 6.33 || b1.Average != 12.67 || b1.BestWickets != 2 {
		t.Fatalf("unexpected b1 figures: %+v", b1)
	}
	if got[1].Economy != 10 {
		t.Fatalf("unexpected b2 economy: %v", got[1].Economy)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	if kind, err := ParseKind(" Batting "); err != nil || kind != KindBatting {
		t.Fatalf("unexpected parse result: %v %v", kind, err)
	}
	if _, err := ParseKind("fielding"); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}
