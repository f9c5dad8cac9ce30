package cache

import (
	"context"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/player"
	"github.com/umair050/cricketApp-sub000/internal/domain/team"
	basecache "github.com/umair050/cricketApp-sub000/internal/platform/cache"
	"github.com/umair050/cricketApp-sub000/internal/platform/resilience"
)

// Lookup is a cached directory read. Misses are cached too, for their own
// ttl, which bounds how long a newly registered team or player stays
// invisible.
type Lookup[T any] struct {
	Value  T
	Exists bool
}

// NewLookupStore keeps hits for hitTTL and misses for missTTL. A missTTL of
// zero or less leaves misses uncached.
func NewLookupStore[T any](hitTTL, missTTL time.Duration) *basecache.Store[Lookup[T]] {
	if missTTL <= 0 {
		missTTL = -1
	}
	return basecache.NewStore[Lookup[T]](hitTTL).WithTTLFunc(func(v Lookup[T]) time.Duration {
		if v.Exists {
			return hitTTL
		}
		return missTTL
	})
}

// TeamDirectory reads through cache and guards the upstream registry with
// breaker. Either may be nil.
type TeamDirectory struct {
	next    team.Directory
	cache   *basecache.Store[Lookup[team.Team]]
	breaker *resilience.Breaker
}

func NewTeamDirectory(next team.Directory, cache *basecache.Store[Lookup[team.Team]], breaker *resilience.Breaker) *TeamDirectory {
	return &TeamDirectory{next: next, cache: cache, breaker: breaker}
}

func (d *TeamDirectory) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	v, err := readThrough(ctx, d.cache, "team:id:"+teamID, d.breaker, func(ctx context.Context) (team.Team, bool, error) {
		return d.next.GetByID(ctx, teamID)
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return v.Value, v.Exists, nil
}

type PlayerDirectory struct {
	next    player.Directory
	cache   *basecache.Store[Lookup[player.Player]]
	breaker *resilience.Breaker
}

func NewPlayerDirectory(next player.Directory, cache *basecache.Store[Lookup[player.Player]], breaker *resilience.Breaker) *PlayerDirectory {
	return &PlayerDirectory{next: next, cache: cache, breaker: breaker}
}

func (d *PlayerDirectory) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := readThrough(ctx, d.cache, "player:id:"+playerID, d.breaker, func(ctx context.Context) (player.Player, bool, error) {
		return d.next.GetByID(ctx, playerID)
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return v.Value, v.Exists, nil
}

func readThrough[T any](
	ctx context.Context,
	store *basecache.Store[Lookup[T]],
	key string,
	breaker *resilience.Breaker,
	fetch func(context.Context) (T, bool, error),
) (Lookup[T], error) {
	load := func(ctx context.Context) (Lookup[T], error) {
		var out Lookup[T]
		err := breaker.Call(func() error {
			item, exists, err := fetch(ctx)
			if err != nil {
				return err
			}
			out = Lookup[T]{Value: item, Exists: exists}
			return nil
		}, nil)
		return out, err
	}
	if store == nil {
		return load(ctx)
	}
	return store.GetOrLoad(ctx, key, load)
}
