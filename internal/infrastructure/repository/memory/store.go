package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
)

type standingKey struct {
	tournamentID string
	teamID       string
}

// Store keeps every scoring table behind one lock. Do holds the write lock
// for the whole callback and records an inverse for each write so a failed
// callback leaves no trace.
type Store struct {
	mu sync.RWMutex

	matches    map[string]match.Match
	matchOrder []string

	balls map[string][]ball.Ball

	cards     map[scorecard.Key]scorecard.Scorecard
	cardOrder map[string][]scorecard.Key

	tournaments map[string]tournament.Tournament
	groups      map[string]tournament.Group
	groupOrder  []string

	standings     map[standingKey]tournament.Standing
	standingOrder []standingKey
}

var _ unitofwork.UnitOfWork = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		matches:     make(map[string]match.Match),
		balls:       make(map[string][]ball.Ball),
		cards:       make(map[scorecard.Key]scorecard.Scorecard),
		cardOrder:   make(map[string][]scorecard.Key),
		tournaments: make(map[string]tournament.Tournament),
		groups:      make(map[string]tournament.Group),
		standings:   make(map[standingKey]tournament.Standing),
	}
}

func (s *Store) Matches() match.Repository { return &MatchRepository{view: view{s: s}} }
func (s *Store) Balls() ball.Repository { return &BallRepository{view: view{s: s}} }
func (s *Store) Scorecards() scorecard.Repository { return &ScorecardRepository{view: view{s: s}} }
func (s *Store) Tournaments() tournament.Repository { return &TournamentRepository{view: view{s: s}} }
func (s *Store) Standings() tournament.StandingRepository { return &StandingRepository{view: view{s: s}} }

func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, tx unitofwork.Repositories) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	j := &journal{}
	defer func() {
		if r := recover(); r != nil {
			j.rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, txRepositories{view: view{s: s, tx: j}}); err != nil {
		j.rollback()
		return err
	}
	return nil
}

type txRepositories struct {
	view view
}

func (r txRepositories) Matches() match.Repository { return &MatchRepository{view: r.view} }
func (r txRepositories) Balls() ball.Repository { return &BallRepository{view: r.view} }
func (r txRepositories) Scorecards() scorecard.Repository { return &ScorecardRepository{view: r.view} }
func (r txRepositories) Tournaments() tournament.Repository { return &TournamentRepository{view: r.view} }
func (r txRepositories) Standings() tournament.StandingRepository { return &StandingRepository{view: r.view} }

type journal struct {
	undo []func()
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// view routes table access either through the store lock or, inside Do,
// through the journal of the running transaction.
type view struct {
	s  *Store
	tx *journal
}

func (v view) read(fn func()) {
	if v.tx == nil {
		v.s.mu.RLock()
		defer v.s.mu.RUnlock()
	}
	fn()
}

// write runs fn and keeps the inverse it returns while in a transaction.
func (v view) write(fn func() (func(), error)) error {
	if v.tx == nil {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	}
	undo, err := fn()
	if err != nil {
		return err
	}
	if v.tx != nil && undo != nil {
		v.tx.undo = append(v.tx.undo, undo)
	}
	return nil
}

func errDuplicate(kind, id string) error {
	return fmt.Errorf("%s %s already exists", kind, id)
}
