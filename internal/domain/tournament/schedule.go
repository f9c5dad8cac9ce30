package tournament

import (
	"errors"
	"fmt"
)

const KnockoutSemiFinalTeams = 4

var ErrNotEnoughQualified = errors.New("not enough qualified teams for knockout")

// RoundRobinPairs returns every unordered pair of teamIDs, i before j.
func RoundRobinPairs(teamIDs []string) []Pairing {
	if len(teamIDs) < 2 {
		return nil
	}
	out := make([]Pairing, 0, len(teamIDs)*(len(teamIDs)-1)/2)
	for i := 0; i < len(teamIDs); i++ {
		for j := i + 1; j < len(teamIDs); j++ {
			out = append(out, Pairing{TeamAID: teamIDs[i], TeamBID: teamIDs[j]})
		}
	}
	return out
}

// SemiFinalSeeds ranks qualified rows and pairs 1v4 and 2v3.
func SemiFinalSeeds(rows []Standing) ([]Pairing, error) {
	qualified := make([]Standing, 0, len(rows))
	for _, row := range rows {
		if row.IsQualified && row.IsActive {
			qualified = append(qualified, row)
		}
	}
	if len(qualified) < KnockoutSemiFinalTeams {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughQualified, len(qualified), KnockoutSemiFinalTeams)
	}

	ranked := Rank(qualified)
	return []Pairing{
		{TeamAID: ranked[0].TeamID, TeamBID: ranked[3].TeamID},
		{TeamAID: ranked[1].TeamID, TeamBID: ranked[2].TeamID},
	}, nil
}
