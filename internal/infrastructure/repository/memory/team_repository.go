package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/umair050/cricketApp-sub000/internal/domain/team"
)

// TeamDirectory is a local stand-in for the team registry.
type TeamDirectory struct {
	mu    sync.RWMutex
	teams map[string]team.Team
}

func NewTeamDirectory(teams []team.Team) *TeamDirectory {
	index := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		index[item.ID] = item
	}
	return &TeamDirectory{teams: index}
}

func (r *TeamDirectory) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}

func (r *TeamDirectory) Upsert(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			continue
		}
		r.teams[item.ID] = item
	}
	return nil
}
