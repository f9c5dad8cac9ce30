package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/player"
	"github.com/umair050/cricketApp-sub000/internal/domain/team"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
)

const TournamentIDCityT20 = "city-t20-2026"

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "lhr-lions", Name: "Lahore Lions", Short: "LHR"},
		{ID: "kch-kings", Name: "Karachi Kings XI", Short: "KCH"},
		{ID: "isb-united", Name: "Islamabad United CC", Short: "ISB"},
		{ID: "mul-sultans", Name: "Multan Sultans CC", Short: "MUL"},
		{ID: "pes-zalmi", Name: "Peshawar Strikers", Short: "PES"},
		{ID: "qta-gladiators", Name: "Quetta Gladiators CC", Short: "QTA"},
	}
}

// SeedPlayers returns two batsmen, a bowler and a keeper per seeded team.
func SeedPlayers() []player.Player {
	roles := []struct {
		suffix string
		role   player.Role
	}{
		{suffix: "bat-1", role: player.RoleBatsman},
		{suffix: "bat-2", role: player.RoleBatsman},
		{suffix: "bowl-1", role: player.RoleBowler},
		{suffix: "wk-1", role: player.RoleWicketKeeper},
	}

	out := make([]player.Player, 0, len(SeedTeams())*len(roles))
	for _, t := range SeedTeams() {
		for _, r := range roles {
			out = append(out, player.Player{
				ID:     t.ID + "-" + r.suffix,
				TeamID: t.ID,
				Name:   fmt.Sprintf("%s %s", t.Short, r.suffix),
				Role:   r.role,
			})
		}
	}
	return out
}

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:         TournamentIDCityT20,
			Name:       "City T20 Cup 2026",
			StartDate:  time.Date(2026, 11, 2, 14, 0, 0, 0, time.UTC),
			OversLimit: match.DefaultOversLimit,
			CreatedAt:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Seed loads tournaments into the store.
func (s *Store) Seed(ctx context.Context, tournaments []tournament.Tournament) error {
	for _, t := range tournaments {
		if err := s.Tournaments().Create(ctx, t); err != nil {
			return fmt.Errorf("seed tournament %s: %w", t.ID, err)
		}
	}
	return nil
}
