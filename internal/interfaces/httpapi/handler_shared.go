package httpapi

import (
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/domain/leaderboard"
	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/domain/scorecard"
	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
	"github.com/umair050/cricketApp-sub000/internal/usecase"
)

type createMatchRequest struct {
	Type         string `json:"type" validate:"omitempty,oneof=friendly tournament"`
	TournamentID string `json:"tournament_id" validate:"omitempty,max=64"`
	GroupID      string `json:"group_id" validate:"omitempty,max=64"`
	Stage        string `json:"stage" validate:"omitempty,oneof=group quarter_final semi_final final"`
	TeamAID      string `json:"team_a_id" validate:"required,max=64"`
	TeamBID      string `json:"team_b_id" validate:"required,max=64,nefield=TeamAID"`
	ScheduledAt  string `json:"scheduled_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	OversLimit   int    `json:"overs_limit" validate:"omitempty,min=1,max=50"`
}

type matchResultRequest struct {
	Status       string `json:"status" validate:"required,oneof=completed cancelled"`
	WinnerTeamID string `json:"winner_team_id" validate:"omitempty,max=64"`
	TeamAScore   string `json:"team_a_score" validate:"omitempty,max=32"`
	TeamBScore   string `json:"team_b_score" validate:"omitempty,max=32"`
	ManOfMatchID string `json:"man_of_match_id" validate:"omitempty,max=64"`
}

type appendBallRequest struct {
	BattingTeamID string  `json:"batting_team_id" validate:"required"`
	BowlingTeamID string  `json:"bowling_team_id" validate:"required"`
	OverNumber    float64 `json:"over_number" validate:"min=0"`
	BatsmanID     string  `json:"batsman_id" validate:"required"`
	NonStrikerID  string  `json:"non_striker_id"`
	BowlerID      string  `json:"bowler_id" validate:"required"`
	FielderID     string  `json:"fielder_id"`
	Outcome       string  `json:"outcome" validate:"required"`
	Runs          int     `json:"runs" validate:"min=0"`
	Extras        int     `json:"extras" validate:"min=0"`
	IsWicket      bool    `json:"is_wicket"`
	WicketType    string  `json:"wicket_type"`
}

type createGroupRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	MaxTeams        int    `json:"max_teams" validate:"min=0"`
	QualifyingTeams int    `json:"qualifying_teams" validate:"min=0"`
}

type assignTeamRequest struct {
	TeamID string `json:"team_id" validate:"required"`
}

type advanceTeamsRequest struct {
	TeamIDs []string `json:"team_ids" validate:"required,min=1,dive,required"`
}

type matchDTO struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	TournamentID string `json:"tournamentId,omitempty"`
	GroupID      string `json:"groupId,omitempty"`
	Stage        string `json:"stage,omitempty"`
	TeamAID      string `json:"teamAId"`
	TeamBID      string `json:"teamBId"`
	ScheduledAt  string `json:"scheduledAt"`
	OversLimit   int    `json:"oversLimit"`
	Status       string `json:"status"`
	WinnerTeamID string `json:"winnerTeamId,omitempty"`
	TeamAScore   string `json:"teamAScore,omitempty"`
	TeamBScore   string `json:"teamBScore,omitempty"`
	ManOfMatchID string `json:"manOfMatchId,omitempty"`
}

type ballDTO struct {
	MatchID       string  `json:"matchId"`
	BallNumber    int     `json:"ballNumber"`
	BattingTeamID string  `json:"battingTeamId"`
	BowlingTeamID string  `json:"bowlingTeamId"`
	OverNumber    float64 `json:"overNumber"`
	BatsmanID     string  `json:"batsmanId"`
	NonStrikerID  string  `json:"nonStrikerId,omitempty"`
	BowlerID      string  `json:"bowlerId"`
	FielderID     string  `json:"fielderId,omitempty"`
	Outcome       string  `json:"outcome"`
	Runs          int     `json:"runs"`
	Extras        int     `json:"extras"`
	IsWicket      bool    `json:"isWicket"`
	WicketType    string  `json:"wicketType,omitempty"`
	IsBoundary    bool    `json:"isBoundary"`
	IsLegal       bool    `json:"isLegal"`
	CreatedAt     string  `json:"createdAt"`
}

type scorecardDTO struct {
	PlayerID      string  `json:"playerId"`
	TeamID        string  `json:"teamId"`
	Runs          int     `json:"runs"`
	BallsFaced    int     `json:"ballsFaced"`
	Fours         int     `json:"fours"`
	Sixes         int     `json:"sixes"`
	StrikeRate    float64 `json:"strikeRate"`
	IsOut         bool    `json:"isOut"`
	DismissalType string  `json:"dismissalType,omitempty"`
	OversBowled   float64 `json:"oversBowled"`
	Wickets       int     `json:"wickets"`
	RunsConceded  int     `json:"runsConceded"`
	Maidens       int     `json:"maidens"`
	Economy       float64 `json:"economy"`
	Catches       int     `json:"catches"`
	RunOuts       int     `json:"runOuts"`
	Stumpings     int     `json:"stumpings"`
}

type teamScoreDTO struct {
	TeamID  string  `json:"teamId"`
	Summary string  `json:"summary"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   string  `json:"overs"`
	RunRate float64 `json:"runRate"`
}

type matchStateDTO struct {
	Match       matchDTO       `json:"match"`
	TeamA       teamScoreDTO   `json:"teamA"`
	TeamB       teamScoreDTO   `json:"teamB"`
	RecentBalls []ballDTO      `json:"recentBalls"`
	Scorecards  []scorecardDTO `json:"scorecards"`
}

type teamScorecardDTO struct {
	TeamID  string         `json:"teamId"`
	Batting []scorecardDTO `json:"batting"`
	Bowling []scorecardDTO `json:"bowling"`
}

type matchScorecardDTO struct {
	MatchID string           `json:"matchId"`
	TeamA   teamScorecardDTO `json:"teamA"`
	TeamB   teamScorecardDTO `json:"teamB"`
}

type matchLeaderboardDTO struct {
	MatchID     string         `json:"matchId"`
	TopBatsmen  []scorecardDTO `json:"topBatsmen"`
	TopBowlers  []scorecardDTO `json:"topBowlers"`
	BestFielder *scorecardDTO  `json:"bestFielder,omitempty"`
}

type battingEntryDTO struct {
	PlayerID     string  `json:"playerId"`
	Matches      int     `json:"matches"`
	Runs         int     `json:"runs"`
	BallsFaced   int     `json:"ballsFaced"`
	Fours        int     `json:"fours"`
	Sixes        int     `json:"sixes"`
	Fifties      int     `json:"fifties"`
	Hundreds     int     `json:"hundreds"`
	HighestScore int     `json:"highestScore"`
	Average      float64 `json:"average"`
	StrikeRate   float64 `json:"strikeRate"`
}

type bowlingEntryDTO struct {
	PlayerID     string  `json:"playerId"`
	Matches      int     `json:"matches"`
	Wickets      int     `json:"wickets"`
	Overs        float64 `json:"overs"`
	RunsConceded int     `json:"runsConceded"`
	Maidens      int     `json:"maidens"`
	BestWickets  int     `json:"bestWickets"`
	Average      float64 `json:"average"`
	Economy      float64 `json:"economy"`
}

type tournamentLeaderboardDTO struct {
	TournamentID string            `json:"tournamentId"`
	Type         string            `json:"type"`
	Batting      []battingEntryDTO `json:"batting,omitempty"`
	Bowling      []bowlingEntryDTO `json:"bowling,omitempty"`
}

type standingDTO struct {
	TeamID        string  `json:"teamId"`
	GroupID       string  `json:"groupId,omitempty"`
	Points        int     `json:"points"`
	NetRunRate    float64 `json:"netRunRate"`
	MatchesPlayed int     `json:"matchesPlayed"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Draws         int     `json:"draws"`
	NoResults     int     `json:"noResults"`
	RunsScored    int     `json:"runsScored"`
	RunsConceded  int     `json:"runsConceded"`
	OversFaced    float64 `json:"oversFaced"`
	OversBowled   float64 `json:"oversBowled"`
	IsQualified   bool    `json:"isQualified"`
}

type groupDTO struct {
	ID              string `json:"id"`
	TournamentID    string `json:"tournamentId"`
	Name            string `json:"name"`
	MaxTeams        int    `json:"maxTeams"`
	QualifyingTeams int    `json:"qualifyingTeams"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		Type:         string(m.Type),
		TournamentID: m.TournamentID,
		GroupID:      m.GroupID,
		Stage:        string(m.Stage),
		TeamAID:      m.TeamAID,
		TeamBID:      m.TeamBID,
		ScheduledAt:  m.ScheduledAt.UTC().Format(time.RFC3339),
		OversLimit:   m.OversLimit,
		Status:       string(m.Status),
		WinnerTeamID: m.WinnerTeamID,
		TeamAScore:   m.TeamAScore,
		TeamBScore:   m.TeamBScore,
		ManOfMatchID: m.ManOfMatchID,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m))
	}
	return out
}

func ballToDTO(b ball.Ball) ballDTO {
	return ballDTO{
		MatchID:       b.MatchID,
		BallNumber:    b.BallNumber,
		BattingTeamID: b.BattingTeamID,
		BowlingTeamID: b.BowlingTeamID,
		OverNumber:    b.OverNumber,
		BatsmanID:     b.BatsmanID,
		NonStrikerID:  b.NonStrikerID,
		BowlerID:      b.BowlerID,
		FielderID:     b.FielderID,
		Outcome:       string(b.Outcome),
		Runs:          b.Runs,
		Extras:        b.Extras,
		IsWicket:      b.IsWicket,
		WicketType:    string(b.WicketType),
		IsBoundary:    b.IsBoundary,
		IsLegal:       b.IsLegal,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func scorecardToDTO(c scorecard.Scorecard) scorecardDTO {
	return scorecardDTO{
		PlayerID:      c.PlayerID,
		TeamID:        c.TeamID,
		Runs:          c.Runs,
		BallsFaced:    c.BallsFaced,
		Fours:         c.Fours,
		Sixes:         c.Sixes,
		StrikeRate:    c.StrikeRate,
		IsOut:         c.IsOut,
		DismissalType: string(c.DismissalType),
		OversBowled:   c.OversBowled,
		Wickets:       c.Wickets,
		RunsConceded:  c.RunsConceded,
		Maidens:       c.Maidens,
		Economy:       c.Economy,
		Catches:       c.Catches,
		RunOuts:       c.RunOuts,
		Stumpings:     c.Stumpings,
	}
}

func scorecardsToDTO(cards []scorecard.Scorecard) []scorecardDTO {
	out := make([]scorecardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, scorecardToDTO(c))
	}
	return out
}

func teamScoreToDTO(s usecase.TeamScore) teamScoreDTO {
	return teamScoreDTO{
		TeamID:  s.TeamID,
		Summary: s.Summary(),
		Runs:    s.Runs,
		Wickets: s.Wickets,
		Overs:   s.Overs,
		RunRate: s.RunRate,
	}
}

func matchStateToDTO(state usecase.MatchState) matchStateDTO {
	recent := make([]ballDTO, 0, len(state.RecentBalls))
	for _, b := range state.RecentBalls {
		recent = append(recent, ballToDTO(b))
	}
	return matchStateDTO{
		Match:       matchToDTO(state.Match),
		TeamA:       teamScoreToDTO(state.TeamA),
		TeamB:       teamScoreToDTO(state.TeamB),
		RecentBalls: recent,
		Scorecards:  scorecardsToDTO(state.Scorecards),
	}
}

func teamScorecardToDTO(card usecase.TeamScorecard) teamScorecardDTO {
	return teamScorecardDTO{
		TeamID:  card.TeamID,
		Batting: scorecardsToDTO(card.Batting),
		Bowling: scorecardsToDTO(card.Bowling),
	}
}

func tournamentLeaderboardToDTO(board leaderboard.TournamentLeaderboard) tournamentLeaderboardDTO {
	dto := tournamentLeaderboardDTO{
		TournamentID: board.TournamentID,
		Type:         string(board.Kind),
	}
	for _, e := range board.Batting {
		dto.Batting = append(dto.Batting, battingEntryDTO(e))
	}
	for _, e := range board.Bowling {
		dto.Bowling = append(dto.Bowling, bowlingEntryDTO(e))
	}
	return dto
}

func standingToDTO(s tournament.Standing) standingDTO {
	return standingDTO{
		TeamID:        s.TeamID,
		GroupID:       s.GroupID,
		Points:        s.Points,
		NetRunRate:    s.NetRunRate,
		MatchesPlayed: s.MatchesPlayed,
		Wins:          s.Wins,
		Losses:        s.Losses,
		Draws:         s.Draws,
		NoResults:     s.NoResults,
		RunsScored:    s.RunsScored,
		RunsConceded:  s.RunsConceded,
		OversFaced:    s.OversFaced,
		OversBowled:   s.OversBowled,
		IsQualified:   s.IsQualified,
	}
}

func standingsToDTO(rows []tournament.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingToDTO(row))
	}
	return out
}
