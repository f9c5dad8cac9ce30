package cache

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/umair050/cricketApp-sub000/internal/domain/player"
	"github.com/umair050/cricketApp-sub000/internal/domain/team"
	basecache "github.com/umair050/cricketApp-sub000/internal/platform/cache"
	"github.com/umair050/cricketApp-sub000/internal/platform/resilience"
)

type countingTeams struct {
	calls int
	teams map[string]team.Team
	err   error
}

func (c *countingTeams) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	c.calls++
	if c.err != nil {
		return team.Team{}, false, c.err
	}
	item, ok := c.teams[teamID]
	return item, ok, nil
}

type countingPlayers struct {
	calls   int
	players map[string]player.Player
}

func (c *countingPlayers) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	c.calls++
	item, ok := c.players[playerID]
	return item, ok, nil
}

func TestTeamDirectory_CachesHitsAndMisses(t *testing.T) {
	next := &countingTeams{teams: map[string]team.Team{
		"lhr-lions": {ID: "lhr-lions", Name: "Lahore Lions", Short: "LHR"},
	}}
	dir := NewTeamDirectory(next, basecache.NewStore[Lookup[team.Team]](time.Minute), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, ok, err := dir.GetByID(ctx, "lhr-lions")
		if err != nil || !ok {
			t.Fatalf("get team: ok=%v err=%v", ok, err)
		}
		if got.Short != "LHR" {
			t.Fatalf("unexpected team: %+v", got)
		}
	}
	for i := 0; i < 2; i++ {
		if _, ok, err := dir.GetByID(ctx, "ghost"); err != nil || ok {
			t.Fatalf("expected cached miss, ok=%v err=%v", ok, err)
		}
	}
	if next.calls != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", next.calls)
	}
}

func TestTeamDirectory_DoesNotCacheErrors(t *testing.T) {
	next := &countingTeams{err: errors.New("registry down")}
	dir := NewTeamDirectory(next, basecache.NewStore[Lookup[team.Team]](time.Minute), nil)
	ctx := context.Background()

	if _, _, err := dir.GetByID(ctx, "lhr-lions"); err == nil {
		t.Fatalf("expected upstream error")
	}
	next.err = nil
	next.teams = map[string]team.Team{"lhr-lions": {ID: "lhr-lions"}}
	if _, ok, err := dir.GetByID(ctx, "lhr-lions"); err != nil || !ok {
		t.Fatalf("expected recovery after upstream error, ok=%v err=%v", ok, err)
	}
	if next.calls != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", next.calls)
	}
}

func TestPlayerDirectory_CachesByID(t *testing.T) {
	next := &countingPlayers{players: map[string]player.Player{
		"lhr-lions-bat-1": {ID: "lhr-lions-bat-1", TeamID: "lhr-lions", Role: player.RoleBatsman},
	}}
	dir := NewPlayerDirectory(next, basecache.NewStore[Lookup[player.Player]](time.Minute), nil)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		got, ok, err := dir.GetByID(ctx, "lhr-lions-bat-1")
		if err != nil || !ok {
			t.Fatalf("get player: ok=%v err=%v", ok, err)
		}
		if got.TeamID != "lhr-lions" {
			t.Fatalf("unexpected player: %+v", got)
		}
	}
	if next.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", next.calls)
	}
}

func TestTeamDirectory_BreakerOpensOnRepeatedFailures(t *testing.T) {
	next := &countingTeams{err: errors.New("registry down")}
	breaker := resilience.NewBreaker(resilience.BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute})
	dir := NewTeamDirectory(next, nil, breaker)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, _, err := dir.GetByID(ctx, "lhr-lions"); err == nil {
			t.Fatalf("expected upstream error")
		}
	}
	_, _, err := dir.GetByID(ctx, "lhr-lions")
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected circuit open, got %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("expected open breaker to skip upstream, got %d calls", next.calls)
	}
}

func TestTeamDirectory_NoCachePassesThrough(t *testing.T) {
	next := &countingTeams{teams: map[string]team.Team{"kch-kings": {ID: "kch-kings"}}}
	dir := NewTeamDirectory(next, nil, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, ok, err := dir.GetByID(ctx, "kch-kings"); err != nil || !ok {
			t.Fatalf("get team: ok=%v err=%v", ok, err)
		}
	}
	if next.calls != 2 {
		t.Fatalf("expected every call to reach upstream, got %d", next.calls)
	}
}

func TestPlayerDirectory_MissesExpireBeforeHits(t *testing.T) {
	next := &countingPlayers{players: map[string]player.Player{
		"lhr-lions-bat-1": {ID: "lhr-lions-bat-1", TeamID: "lhr-lions", Role: player.RoleBatsman},
	}}
	dir := NewPlayerDirectory(next, NewLookupStore[player.Player](time.Minute, 20*time.Millisecond), nil)
	ctx := context.Background()

	if _, ok, _ := dir.GetByID(ctx, "lhr-lions-bat-1"); !ok {
		t.Fatalf("expected registered player")
	}
	if _, ok, _ := dir.GetByID(ctx, "lhr-lions-bat-9"); ok {
		t.Fatalf("expected miss before registration")
	}
	next.players["lhr-lions-bat-9"] = player.Player{ID: "lhr-lions-bat-9", TeamID: "lhr-lions", Role: player.RoleBatsman}

	time.Sleep(40 * time.Millisecond)

	if _, ok, err := dir.GetByID(ctx, "lhr-lions-bat-9"); err != nil || !ok {
		t.Fatalf("newly registered player still hidden: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := dir.GetByID(ctx, "lhr-lions-bat-1"); !ok {
		t.Fatalf("expected cached hit")
	}
	if next.calls != 3 {
		t.Fatalf("expected hit to stay cached, upstream calls=%d", next.calls)
	}
}

func TestNewLookupStore_ZeroMissTTLSkipsMisses(t *testing.T) {
	next := &countingTeams{teams: map[string]team.Team{}}
	dir := NewTeamDirectory(next, NewLookupStore[team.Team](time.Minute, 0), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, ok, err := dir.GetByID(ctx, "ghost"); err != nil || ok {
			t.Fatalf("expected miss, ok=%v err=%v", ok, err)
		}
	}
	if next.calls != 3 {
		t.Fatalf("misses should not be cached, upstream calls=%d", next.calls)
	}
}
