package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}/result", handler.UpdateMatchResult)
	mux.HandleFunc("POST /v1/matches/{matchID}/balls", handler.AppendBall)
	mux.HandleFunc("DELETE /v1/matches/{matchID}/balls/last", handler.UndoLastBall)
	mux.HandleFunc("GET /v1/matches/{matchID}/state", handler.GetMatchState)
	mux.HandleFunc("GET /v1/matches/{matchID}/scorecard", handler.GetMatchScorecard)
	mux.HandleFunc("GET /v1/matches/{matchID}/leaderboard", handler.GetMatchLeaderboard)
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/leaderboard", handler.GetTournamentLeaderboard)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/points-table", handler.GetPointsTable)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/groups", handler.ListGroups)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/groups", handler.CreateGroup)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/groups/{groupID}/teams", handler.AssignTeamToGroup)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/schedule/group", handler.GenerateGroupMatches)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/schedule/knockout", handler.GenerateKnockoutMatches)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/knockout/teams", handler.AdvanceTeamsToKnockout)
}
