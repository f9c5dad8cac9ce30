package httpapi

import (
	"net/http"
	"time"

	"github.com/umair050/cricketApp-sub000/internal/domain/match"
	"github.com/umair050/cricketApp-sub000/internal/usecase"
)

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var scheduledAt time.Time
	if req.ScheduledAt != "" {
		// The datetime tag already checked the layout.
		scheduledAt, _ = time.Parse(time.RFC3339, req.ScheduledAt)
	}

	created, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		Type:         match.Type(req.Type),
		TournamentID: req.TournamentID,
		GroupID:      req.GroupID,
		Stage:        match.Stage(req.Stage),
		TeamAID:      req.TeamAID,
		TeamBID:      req.TeamBID,
		ScheduledAt:  scheduledAt,
		OversLimit:   req.OversLimit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "team_a_id", req.TeamAID, "team_b_id", req.TeamBID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := pathValue(r, "matchID")
	m, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) UpdateMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateMatchResult")
	defer span.End()

	matchID := pathValue(r, "matchID")
	var req matchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.UpdateMatchResult(ctx, matchID, usecase.MatchResultInput{
		Status:       match.Status(req.Status),
		WinnerTeamID: req.WinnerTeamID,
		TeamAScore:   req.TeamAScore,
		TeamBScore:   req.TeamBScore,
		ManOfMatchID: req.ManOfMatchID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := pathValue(r, "matchID")
	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": matchID, "status": "deleted"})
}
