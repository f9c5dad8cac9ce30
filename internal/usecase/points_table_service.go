package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
)

// PointsTableService maintains tournament standings from completed results.
// It reads only the result strings on the match, never the ball ledger.
type PointsTableService struct {
	repos  unitofwork.Repositories
	logger *logging.Logger
	now    func() time.Time
}

func NewPointsTableService(repos unitofwork.Repositories, logger *logging.Logger) *PointsTableService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PointsTableService{
		repos:  repos,
		logger: logger,
		now:    time.Now,
	}
}

// ApplyResult folds a completed tournament match into both teams' rows. It
// is a no-op for matches that do not count. Must run inside the transaction
// that completes the match.
func (s *PointsTableService) ApplyResult(ctx context.Context, tx unitofwork.Repositories, m match.Match) error {
	if !m.CountsForStandings() {
		return nil
	}
	if !m.HasTeam(m.WinnerTeamID) {
		return invalidInput(match.ErrWinnerNotInMatch)
	}

	t, err := loadTournament(ctx, tx, m.TournamentID)
	if err != nil {
		return err
	}
	defaultOvers := float64(t.OversLimit)

	scoreA, err := match.ParseScoreSummary(m.TeamAScore, defaultOvers)
	if err != nil {
		return invalidInput(fmt.Errorf("team a score: %w", err))
	}
	scoreB, err := match.ParseScoreSummary(m.TeamBScore, defaultOvers)
	if err != nil {
		return invalidInput(fmt.Errorf("team b score: %w", err))
	}
	if scoreA.OversDefaulted || scoreB.OversDefaulted {
		s.logger.WarnContext(ctx, "score summary missing overs, using tournament limit",
			"match_id", m.ID,
			"overs_limit", t.OversLimit,
		)
	}

	now := s.now().UTC()
	sides := []struct {
		teamID   string
		own      match.ScoreSummary
		opponent match.ScoreSummary
	}{
		{teamID: m.TeamAID, own: scoreA, opponent: scoreB},
		{teamID: m.TeamBID, own: scoreB, opponent: scoreA},
	}
	for _, side := range sides {
		row, err := loadOrNewStanding(ctx, tx, m.TournamentID, side.teamID, now)
		if err != nil {
			return err
		}
		row.RecordResult(side.teamID == m.WinnerTeamID, side.own, side.opponent)
		row.UpdatedAt = now
		if err := tx.Standings().Upsert(ctx, row); err != nil {
			return fmt.Errorf("upsert standing team=%s: %w", side.teamID, err)
		}
	}

	s.logger.InfoContext(ctx, "standings updated",
		"tournament_id", m.TournamentID,
		"match_id", m.ID,
		"winner_team_id", m.WinnerTeamID,
	)
	return nil
}

// GetPointsTable returns active rows ranked by points then net run rate.
func (s *PointsTableService) GetPointsTable(ctx context.Context, tournamentID string) ([]tournament.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsTableService.GetPointsTable", tournamentAttr(tournamentID))
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if _, err := loadTournament(ctx, s.repos, tournamentID); err != nil {
		return nil, err
	}

	rows, err := s.repos.Standings().ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	active := make([]tournament.Standing, 0, len(rows))
	for _, row := range rows {
		if row.IsActive {
			active = append(active, row)
		}
	}
	return tournament.Rank(active), nil
}

func loadTournament(ctx context.Context, repos unitofwork.Repositories, tournamentID string) (tournament.Tournament, error) {
	t, ok, err := repos.Tournaments().GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !ok {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return t, nil
}

func loadOrNewStanding(ctx context.Context, repos unitofwork.Repositories, tournamentID, teamID string, now time.Time) (tournament.Standing, error) {
	row, ok, err := repos.Standings().Get(ctx, tournamentID, teamID)
	if err != nil {
		return tournament.Standing{}, fmt.Errorf("get standing team=%s: %w", teamID, err)
	}
	if ok {
		return row, nil
	}
	row = tournament.NewStanding(tournamentID, teamID)
	row.CreatedAt = now
	return row, nil
}
