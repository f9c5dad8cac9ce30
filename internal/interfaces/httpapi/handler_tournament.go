package httpapi

import (
	"net/http"

	"github.com/umair050/cricketApp-sub000/internal/domain/tournament"
	"github.com/umair050/cricketApp-sub000/internal/usecase"
)

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListGroups")
	defer span.End()

	tournamentID := pathValue(r, "tournamentID")
	groups, err := h.tournamentService.ListGroups(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list groups failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]groupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, groupToDTO(g))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateGroup")
	defer span.End()

	tournamentID := pathValue(r, "tournamentID")
	var req createGroupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	group, err := h.tournamentService.CreateGroup(ctx, usecase.CreateGroupInput{
		TournamentID:    tournamentID,
		Name:            req.Name,
		MaxTeams:        req.MaxTeams,
		QualifyingTeams: req.QualifyingTeams,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create group failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, groupToDTO(group))
}

func (h *Handler) AssignTeamToGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.AssignTeamToGroup")
	defer span.End()

	tournamentID := pathValue(r, "tournamentID")
	groupID := pathValue(r, "groupID")
	var req assignTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	row, err := h.tournamentService.AssignTeamToGroup(ctx, tournamentID, groupID, req.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "assign team to group failed",
			"tournament_id", tournamentID,
			"group_id", groupID,
			"team_id", req.TeamID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingToDTO(row))
}

func (h *Handler) GenerateGroupMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GenerateGroupMatches")
	defer span.End()

	tournamentID := pathValue(r, "tournamentID")
	matches, err := h.scheduleService.GenerateGroupMatches(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "generate group matches failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchesToDTO(matches))
}

func (h *Handler) GenerateKnockoutMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GenerateKnockoutMatches")
	defer span.End()

	tournamentID := pathValue(r, "tournamentID")
	matches, err := h.scheduleService.GenerateKnockoutMatches(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "generate knockout matches failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchesToDTO(matches))
}

func (h *Handler) AdvanceTeamsToKnockout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.AdvanceTeamsToKnockout")
	defer span.End()

	tournamentID := pathValue(r, "tournamentID")
	var req advanceTeamsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.scheduleService.AdvanceTeamsToKnockout(ctx, tournamentID, req.TeamIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "advance teams failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func groupToDTO(g tournament.Group) groupDTO {
	return groupDTO{
		ID:              g.ID,
		TournamentID:    g.TournamentID,
		Name:            g.Name,
		MaxTeams:        g.MaxTeams,
		QualifyingTeams: g.QualifyingTeams,
	}
}
