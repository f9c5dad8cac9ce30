package usecase

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/infrastructure/repository/memory"
)

func TestMatchService_CreateMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     CreateMatchInput
		targetErr error
	}{
		{
			name:      "self play",
			input:     CreateMatchInput{TeamAID: "lhr-lions", TeamBID: "lhr-lions"},
			targetErr: match.ErrSelfPlay,
		},
		{
			name:      "self play is invalid input",
			input:     CreateMatchInput{TeamAID: "lhr-lions", TeamBID: " lhr-lions "},
			targetErr: ErrInvalidInput,
		},
		{
			name:      "unknown team",
			input:     CreateMatchInput{TeamAID: "lhr-lions", TeamBID: "nowhere"},
			targetErr: ErrNotFound,
		},
		{
			name:      "tournament type without tournament",
			input:     CreateMatchInput{Type: match.TypeTournament, TeamAID: "lhr-lions", TeamBID: "kch-kings"},
			targetErr: ErrInvalidInput,
		},
		{
			name:      "unknown tournament",
			input:     CreateMatchInput{TournamentID: "missing", TeamAID: "lhr-lions", TeamBID: "kch-kings"},
			targetErr: ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			_, err := env.matches.CreateMatch(t.Context(), tc.input)
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}

func TestMatchService_CreateMatchDefaults(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	friendly := env.createFriendly(t)
	if friendly.Type != match.TypeFriendly || friendly.OversLimit != match.DefaultOversLimit {
		t.Fatalf("unexpected friendly defaults: %+v", friendly)
	}
	if friendly.Status != match.StatusScheduled || !friendly.ScheduledAt.Equal(testNow) {
		t.Fatalf("unexpected friendly schedule: %+v", friendly)
	}

	cup := env.createTournamentMatch(t, "isb-united", "mul-sultans")
	if cup.Type != match.TypeTournament || cup.TournamentID != memory.TournamentIDCityT20 {
		t.Fatalf("unexpected tournament match: %+v", cup)
	}
}

func TestMatchService_UpdateMatchResultUpdatesStandings(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createTournamentMatch(t, "lhr-lions", "kch-kings")

	got, err := env.matches.UpdateMatchResult(ctx, m.ID, MatchResultInput{
		Status:       match.StatusCompleted,
		WinnerTeamID: "lhr-lions",
		TeamAScore:   "180/5 (20)",
		TeamBScore:   "150/8 (18.3)",
		ManOfMatchID: "lhr-lions-bat-1",
	})
	if err != nil {
		t.Fatalf("update result: %v", err)
	}
	if got.Status != match.StatusCompleted || got.WinnerTeamID != "lhr-lions" {
		t.Fatalf("unexpected match: %+v", got)
	}

	table, err := env.points.GetPointsTable(ctx, memory.TournamentIDCityT20)
	if err != nil {
		t.Fatalf("points table: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table))
	}
	winner, loser := table[0], table[1]
	if winner.TeamID != "lhr-lions" || winner.Points != 2 || winner.Wins != 1 || winner.NetRunRate != 0.803 {
		t.Fatalf("unexpected winner row: %+v", winner)
	}
	if loser.TeamID != "kch-kings" || loser.Points != 0 || loser.Losses != 1 || loser.NetRunRate != -0.803 {
		t.Fatalf("unexpected loser row: %+v", loser)
	}
}

func TestMatchService_UpdateMatchResultRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     MatchResultInput
		targetErr error
	}{
		{
			name:      "winner not in match",
			input:     MatchResultInput{Status: match.StatusCompleted, WinnerTeamID: "isb-united", TeamAScore: "100/2", TeamBScore: "99/9"},
			targetErr: match.ErrWinnerNotInMatch,
		},
		{
			name:      "unparseable score",
			input:     MatchResultInput{Status: match.StatusCompleted, WinnerTeamID: "lhr-lions", TeamAScore: "a lot", TeamBScore: "99/9"},
			targetErr: match.ErrInvalidScoreSummary,
		},
		{
			name:      "cancelled with winner",
			input:     MatchResultInput{Status: match.StatusCancelled, WinnerTeamID: "lhr-lions"},
			targetErr: ErrInvalidInput,
		},
		{
			name:      "live is not a result",
			input:     MatchResultInput{Status: match.StatusLive},
			targetErr: ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			env := newTestEnv(t)
			m := env.createTournamentMatch(t, "lhr-lions", "kch-kings")

			_, err := env.matches.UpdateMatchResult(ctx, m.ID, tc.input)
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}

			stored, err := env.matches.GetMatch(ctx, m.ID)
			if err != nil {
				t.Fatalf("get match: %v", err)
			}
			if stored.Status != match.StatusScheduled {
				t.Fatalf("match should be unchanged, got status %s", stored.Status)
			}
			rows, _ := env.store.Standings().ListByTournament(ctx, memory.TournamentIDCityT20)
			if len(rows) != 0 {
				t.Fatalf("standings should be unchanged, got %d rows", len(rows))
			}
		})
	}
}

func TestMatchService_ResultIsFinal(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createFriendly(t)
	input := MatchResultInput{Status: match.StatusCompleted, WinnerTeamID: "kch-kings", TeamAScore: "120/9", TeamBScore: "121/3"}
	if _, err := env.matches.UpdateMatchResult(ctx, m.ID, input); err != nil {
		t.Fatalf("first result: %v", err)
	}
	if _, err := env.matches.UpdateMatchResult(ctx, m.ID, input); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestMatchService_DeleteMatchHidesMatch(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	m := env.createFriendly(t)

	if err := env.matches.DeleteMatch(ctx, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.matches.GetMatch(ctx, m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := env.matches.DeleteMatch(ctx, m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	stored, ok, _ := env.store.Matches().GetByID(ctx, m.ID)
	if !ok || !stored.IsDeleted {
		t.Fatalf("expected soft-deleted row, got ok=%v %+v", ok, stored)
	}
}
