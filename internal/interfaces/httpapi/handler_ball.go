package httpapi

import (
	"net/http"

	"github.com/umair050/cricketApp-sub000/internal/domain/ball"
	"github.com/umair050/cricketApp-sub000/internal/usecase"
)

func (h *Handler) AppendBall(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.AppendBall")
	defer span.End()

	matchID := pathValue(r, "matchID")
	var req appendBallRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	appended, err := h.ledgerService.AppendBall(ctx, matchID, usecase.DeliveryInput{
		BattingTeamID: req.BattingTeamID,
		BowlingTeamID: req.BowlingTeamID,
		OverNumber:    req.OverNumber,
		BatsmanID:     req.BatsmanID,
		NonStrikerID:  req.NonStrikerID,
		BowlerID:      req.BowlerID,
		FielderID:     req.FielderID,
		Outcome:       ball.Outcome(req.Outcome),
		Runs:          req.Runs,
		Extras:        req.Extras,
		IsWicket:      req.IsWicket,
		WicketType:    ball.WicketType(req.WicketType),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "append ball failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, ballToDTO(appended))
}

func (h *Handler) UndoLastBall(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UndoLastBall")
	defer span.End()

	matchID := pathValue(r, "matchID")
	removed, err := h.ledgerService.UndoLastBall(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "undo last ball failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ballToDTO(removed))
}
