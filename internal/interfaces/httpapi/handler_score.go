package httpapi

import "net/http"

func (h *Handler) GetMatchState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetMatchState")
	defer span.End()

	matchID := pathValue(r, "matchID")
	state, err := h.scoreService.GetCurrentMatchState(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match state failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchStateToDTO(state))
}

func (h *Handler) GetMatchScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetMatchScorecard")
	defer span.End()

	matchID := pathValue(r, "matchID")
	card, err := h.scoreService.GetMatchScorecard(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match scorecard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchScorecardDTO{
		MatchID: card.MatchID,
		TeamA:   teamScorecardToDTO(card.TeamA),
		TeamB:   teamScorecardToDTO(card.TeamB),
	})
}

func (h *Handler) GetMatchLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetMatchLeaderboard")
	defer span.End()

	matchID := pathValue(r, "matchID")
	board, err := h.leaderboardService.GetMatchLeaderboard(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match leaderboard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := matchLeaderboardDTO{
		MatchID:    board.MatchID,
		TopBatsmen: scorecardsToDTO(board.TopBatsmen),
		TopBowlers: scorecardsToDTO(board.TopBowlers),
	}
	if board.BestFielder != nil {
		fielder := scorecardToDTO(*board.BestFielder)
		dto.BestFielder = &fielder
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) GetTournamentLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetTournamentLeaderboard")
	defer span.End()

	tournamentID := pathValue(r, "tournamentID")
	kind := r.URL.Query().Get("type")
	board, err := h.leaderboardService.GetTournamentLeaderboard(ctx, tournamentID, kind)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament leaderboard failed", "tournament_id", tournamentID, "type", kind, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentLeaderboardToDTO(board))
}

func (h *Handler) GetPointsTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetPointsTable")
	defer span.End()

	tournamentID := pathValue(r, "tournamentID")
	rows, err := h.pointsTableService.GetPointsTable(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get points table failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}
