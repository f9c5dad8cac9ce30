package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/overs"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	"github.com/umair050/cricketApp-sub000/internal/platform/numeric"
)

const RecentBallsWindow = 6

// maxLedgerViewReads bounds how often a match state read is retried while
// deliveries keep landing.
const maxLedgerViewReads = 3

// TeamScore is a side's live total derived from the ledger.
type TeamScore struct {
	TeamID     string
	Runs       int
	Wickets    int
	LegalBalls int
	Overs      string
	RunRate    float64
}

// Summary renders the score as "R/W (O.B)".
func (t TeamScore) Summary() string {
	return match.FormatScoreSummary(t.Runs, t.Wickets, t.LegalBalls)
}

type MatchState struct {
	Match       match.Match
	TeamA       TeamScore
	TeamB       TeamScore
	RecentBalls []ball.Ball
	Scorecards  []scorecard.Scorecard
}

type TeamScorecard struct {
	TeamID  string
	Batting []scorecard.Scorecard
	Bowling []scorecard.Scorecard
}

type MatchScorecard struct {
	MatchID string
	TeamA   TeamScorecard
	TeamB   TeamScorecard
}

// ScoreService derives read models from the ledger and scorecards. It holds
// no state of its own.
type ScoreService struct {
	repos unitofwork.Repositories
}

func NewScoreService(repos unitofwork.Repositories) *ScoreService {
	return &ScoreService{repos: repos}
}

func (s *ScoreService) GetCurrentMatchState(ctx context.Context, matchID string) (MatchState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.GetCurrentMatchState", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchState{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, err := loadMatch(ctx, s.repos, matchID)
	if err != nil {
		return MatchState{}, err
	}

	balls, cards, err := s.loadLedgerView(ctx, matchID)
	if err != nil {
		return MatchState{}, err
	}

	return MatchState{
		Match:       m,
		TeamA:       summarizeTeam(m.TeamAID, balls),
		TeamB:       summarizeTeam(m.TeamBID, balls),
		RecentBalls: recentBalls(balls, RecentBallsWindow),
		Scorecards:  cards,
	}, nil
}

// loadLedgerView reads the ledger and scorecards concurrently. The reads are
// not one snapshot, so the ledger length is taken before and after and the
// pair is re-read if a write landed in between.
func (s *ScoreService) loadLedgerView(ctx context.Context, matchID string) ([]ball.Ball, []scorecard.Scorecard, error) {
	var (
		balls []ball.Ball
		cards []scorecard.Scorecard
	)
	for attempt := 1; ; attempt++ {
		before, err := s.repos.Balls().Count(ctx, matchID)
		if err != nil {
			return nil, nil, fmt.Errorf("count balls: %w", err)
		}

		p := pool.New().WithContext(ctx).WithCancelOnError()
		p.Go(func(ctx context.Context) error {
			items, err := s.repos.Balls().ListByMatch(ctx, matchID)
			if err != nil {
				return fmt.Errorf("list balls: %w", err)
			}
			balls = items
			return nil
		})
		p.Go(func(ctx context.Context) error {
			items, err := s.repos.Scorecards().ListByMatch(ctx, matchID)
			if err != nil {
				return fmt.Errorf("list scorecards: %w", err)
			}
			cards = items
			return nil
		})
		if err := p.Wait(); err != nil {
			return nil, nil, err
		}

		after, err := s.repos.Balls().Count(ctx, matchID)
		if err != nil {
			return nil, nil, fmt.Errorf("count balls: %w", err)
		}
		if before == after && after == len(balls) {
			return balls, cards, nil
		}
		if attempt == maxLedgerViewReads {
			return nil, nil, fmt.Errorf("%w: ledger for match=%s kept moving while reading state", ErrConflict, matchID)
		}
	}
}

func (s *ScoreService) GetMatchScorecard(ctx context.Context, matchID string) (MatchScorecard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.GetMatchScorecard", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchScorecard{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, err := loadMatch(ctx, s.repos, matchID)
	if err != nil {
		return MatchScorecard{}, err
	}

	cards, err := s.repos.Scorecards().ListByMatch(ctx, matchID)
	if err != nil {
		return MatchScorecard{}, fmt.Errorf("list scorecards: %w", err)
	}

	return MatchScorecard{
		MatchID: matchID,
		TeamA:   teamScorecard(m.TeamAID, cards),
		TeamB:   teamScorecard(m.TeamBID, cards),
	}, nil
}

func summarizeTeam(teamID string, balls []ball.Ball) TeamScore {
	out := TeamScore{TeamID: teamID}
	for _, b := range balls {
		if b.BattingTeamID != teamID {
			continue
		}
		out.Runs += b.TotalRuns()
		if b.IsWicket {
			out.Wickets++
		}
		if b.IsLegal {
			out.LegalBalls++
		}
	}
	notation := overs.FromBalls(out.LegalBalls)
	out.Overs = overs.Format(notation)
	out.RunRate = numeric.Ratio(float64(out.Runs), notation, 2)
	return out
}

// recentBalls returns up to n of the latest deliveries, newest first.
func recentBalls(balls []ball.Ball, n int) []ball.Ball {
	out := make([]ball.Ball, 0, n)
	for i := len(balls) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, balls[i])
	}
	return out
}

func teamScorecard(teamID string, cards []scorecard.Scorecard) TeamScorecard {
	out := TeamScorecard{
		TeamID:  teamID,
		Batting: make([]scorecard.Scorecard, 0),
		Bowling: make([]scorecard.Scorecard, 0),
	}
	for _, card := range cards {
		if card.TeamID != teamID {
			continue
		}
		if card.HasBatted() {
			out.Batting = append(out.Batting, card)
		}
		if card.HasBowled() {
			out.Bowling = append(out.Bowling, card)
		}
	}
	return out
}
