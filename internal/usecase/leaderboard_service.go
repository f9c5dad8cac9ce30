package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/umair050/cricketApp-sub000/internal/domain/leaderboard"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	"github.com/umair050/cricketApp-sub000/internal/platform/cache"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
)

const defaultLeaderboardWorkers = 4

type LeaderboardService struct {
	repos   unitofwork.Repositories
	cache   *cache.Store[leaderboard.TournamentLeaderboard]
	workers int
	logger  *logging.Logger
}

// NewLeaderboardService builds the service. A nil cache disables caching of
// tournament leaderboards.
func NewLeaderboardService(
	repos unitofwork.Repositories,
	store *cache.Store[leaderboard.TournamentLeaderboard],
	workers int,
	logger *logging.Logger,
) *LeaderboardService {
	if workers <= 0 {
		workers = defaultLeaderboardWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderboardService{
		repos:   repos,
		cache:   store,
		workers: workers,
		logger:  logger,
	}
}

func (s *LeaderboardService) GetMatchLeaderboard(ctx context.Context, matchID string) (leaderboard.MatchLeaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetMatchLeaderboard", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return leaderboard.MatchLeaderboard{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if _, err := loadMatch(ctx, s.repos, matchID); err != nil {
		return leaderboard.MatchLeaderboard{}, err
	}

	cards, err := s.repos.Scorecards().ListByMatch(ctx, matchID)
	if err != nil {
		return leaderboard.MatchLeaderboard{}, fmt.Errorf("list scorecards: %w", err)
	}
	return leaderboard.ForMatch(matchID, cards), nil
}

// GetTournamentLeaderboard aggregates scorecards of the tournament's
// completed matches. kind is "batting" or "bowling".
func (s *LeaderboardService) GetTournamentLeaderboard(ctx context.Context, tournamentID, kind string) (leaderboard.TournamentLeaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetTournamentLeaderboard", tournamentAttr(tournamentID))
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return leaderboard.TournamentLeaderboard{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	parsed, err := leaderboard.ParseKind(kind)
	if err != nil {
		return leaderboard.TournamentLeaderboard{}, invalidInput(err)
	}
	if _, err := loadTournament(ctx, s.repos, tournamentID); err != nil {
		return leaderboard.TournamentLeaderboard{}, err
	}

	load := func(ctx context.Context) (leaderboard.TournamentLeaderboard, error) {
		return s.buildTournamentLeaderboard(ctx, tournamentID, parsed)
	}
	if s.cache == nil {
		return load(ctx)
	}
	return s.cache.GetOrLoad(ctx, tournamentCacheKey(tournamentID)+string(parsed), load)
}

// InvalidateTournament drops cached leaderboards after a match result or
// deletion changes the set of completed matches.
func (s *LeaderboardService) InvalidateTournament(ctx context.Context, tournamentID string) {
	if s.cache == nil || tournamentID == "" {
		return
	}
	s.cache.DeletePrefix(ctx, tournamentCacheKey(tournamentID))
}

func (s *LeaderboardService) buildTournamentLeaderboard(ctx context.Context, tournamentID string, kind leaderboard.Kind) (leaderboard.TournamentLeaderboard, error) {
	matches, err := s.repos.Matches().ListByTournament(ctx, tournamentID)
	if err != nil {
		return leaderboard.TournamentLeaderboard{}, fmt.Errorf("list tournament matches: %w", err)
	}

	completed := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == match.StatusCompleted && !m.IsDeleted {
			completed = append(completed, m)
		}
	}

	perMatch, err := s.loadScorecards(ctx, completed)
	if err != nil {
		return leaderboard.TournamentLeaderboard{}, err
	}
	cards := make([]scorecard.Scorecard, 0)
	for _, items := range perMatch {
		cards = append(cards, items...)
	}

	out := leaderboard.TournamentLeaderboard{TournamentID: tournamentID, Kind: kind}
	switch kind {
	case leaderboard.KindBatting:
		out.Batting = leaderboard.Batting(cards)
	case leaderboard.KindBowling:
		out.Bowling = leaderboard.Bowling(cards)
	}

	s.logger.DebugContext(ctx, "tournament leaderboard built",
		"tournament_id", tournamentID,
		"kind", string(kind),
		"completed_matches", len(completed),
	)
	return out, nil
}

// loadScorecards fetches each match's cards on a bounded pool. The result is
// indexed like matches.
func (s *LeaderboardService) loadScorecards(ctx context.Context, matches []match.Match) ([][]scorecard.Scorecard, error) {
	out := make([][]scorecard.Scorecard, len(matches))
	if len(matches) == 0 {
		return out, nil
	}

	workerCount := min(s.workers, len(matches))
	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		workers  sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	for i, m := range matches {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			items, err := s.repos.Scorecards().ListByMatch(ctx, m.ID)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("list scorecards match=%s: %w", m.ID, err)
				}
				errMu.Unlock()
				return
			}
			out[i] = items
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func tournamentCacheKey(tournamentID string) string {
	return "tournament:" + tournamentID + ":"
}
