package usecase

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/umair050/cricketApp-sub000/internal/infrastructure/repository/memory"
)

func TestTournamentService_CreateGroupValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()

	_, err := env.tournaments.CreateGroup(ctx, CreateGroupInput{TournamentID: memory.TournamentIDCityT20, Name: "A", MaxTeams: 2, QualifyingTeams: 3})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, err = env.tournaments.CreateGroup(ctx, CreateGroupInput{TournamentID: "missing", Name: "A"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	g, err := env.tournaments.CreateGroup(ctx, CreateGroupInput{TournamentID: memory.TournamentIDCityT20, Name: " Group B "})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	groups, err := env.tournaments.ListGroups(ctx, memory.TournamentIDCityT20)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != g.ID || groups[0].Name != "Group B" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestTournamentService_AssignTeamToGroup(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := newTestEnv(t)
	g := env.setupGroup(t, groupATeams)

	row, err := env.tournaments.AssignTeamToGroup(ctx, memory.TournamentIDCityT20, g.ID, "lhr-lions")
	if err != nil {
		t.Fatalf("reassign to same group: %v", err)
	}
	if row.GroupID != g.ID || !row.IsActive {
		t.Fatalf("unexpected row: %+v", row)
	}

	_, err = env.tournaments.AssignTeamToGroup(ctx, memory.TournamentIDCityT20, g.ID, "pes-zalmi")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected full group conflict, got %v", err)
	}

	other, err := env.tournaments.CreateGroup(ctx, CreateGroupInput{TournamentID: memory.TournamentIDCityT20, Name: "Group B"})
	if err != nil {
		t.Fatalf("create group b: %v", err)
	}
	_, err = env.tournaments.AssignTeamToGroup(ctx, memory.TournamentIDCityT20, other.ID, "lhr-lions")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected second group conflict, got %v", err)
	}

	_, err = env.tournaments.AssignTeamToGroup(ctx, memory.TournamentIDCityT20, "no-such-group", "pes-zalmi")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
