package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/umair050/cricketApp-sub000/internal/domain/leaderboard"
	"github.com/umair050/cricketApp-sub000/internal/infrastructure/repository/memory"
	"github.com/umair050/cricketApp-sub000/internal/platform/cache"
	idgen "github.com/umair050/cricketApp-sub000/internal/platform/id"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
	"github.com/umair050/cricketApp-sub000/internal/platform/resilience"
	"github.com/umair050/cricketApp-sub000/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	if err := store.Seed(t.Context(), memory.SeedTournaments()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	teams := memory.NewTeamDirectory(memory.SeedTeams())
	players := memory.NewPlayerDirectory(memory.SeedPlayers())
	logger := logging.NewNop()
	locks := resilience.NewKeyLock()
	ids := idgen.NewUUIDGenerator()

	points := usecase.NewPointsTableService(store, logger)
	boards := usecase.NewLeaderboardService(store, cache.NewStore[leaderboard.TournamentLeaderboard](time.Minute), 2, logger)
	handler := NewHandler(
		usecase.NewMatchService(store, teams, players, points, locks, boards, ids, logger),
		usecase.NewLedgerService(store, players, usecase.NewScorecardAggregator(ids), locks, logger),
		usecase.NewScoreService(store),
		boards,
		points,
		usecase.NewScheduleService(store, teams, ids, usecase.DefaultScheduleConfig(), logger),
		usecase.NewTournamentService(store, teams, ids, logger),
		logger,
	)
	return NewRouter(handler, logger, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("%s %s: unmarshal response body %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, envelope
}

func dataObject(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()

	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", envelope)
	}
	return data
}

func errorStatus(envelope map[string]any) string {
	errObj, _ := envelope["error"].(map[string]any)
	status, _ := errObj["status"].(string)
	return status
}

func createTestMatch(t *testing.T, router http.Handler) string {
	t.Helper()

	code, body := doJSON(t, router, http.MethodPost, "/v1/matches", `{"team_a_id":"lhr-lions","team_b_id":"kch-kings"}`)
	if code != http.StatusCreated {
		t.Fatalf("create match: expected 201, got %d body=%v", code, body)
	}
	matchID, _ := dataObject(t, body)["id"].(string)
	if matchID == "" {
		t.Fatalf("expected match id in response")
	}
	return matchID
}

const fourByBat1 = `{
	"batting_team_id": "lhr-lions",
	"bowling_team_id": "kch-kings",
	"over_number": 0.1,
	"batsman_id": "lhr-lions-bat-1",
	"non_striker_id": "lhr-lions-bat-2",
	"bowler_id": "kch-kings-bowl-1",
	"outcome": "four",
	"runs": 4
}`

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	code, body := doJSON(t, router, http.MethodGet, "/healthz", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if got := dataObject(t, body)["status"]; got != "ok" {
		t.Fatalf("expected status ok, got %v", got)
	}
}

func TestBallLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	matchID := createTestMatch(t, router)

	code, body := doJSON(t, router, http.MethodPost, "/v1/matches/"+matchID+"/balls", fourByBat1)
	if code != http.StatusCreated {
		t.Fatalf("append ball: expected 201, got %d body=%v", code, body)
	}
	appended := dataObject(t, body)
	if got := appended["ballNumber"]; got != float64(1) {
		t.Fatalf("expected ballNumber 1, got %v", got)
	}
	if got := appended["isBoundary"]; got != true {
		t.Fatalf("expected boundary flag, got %v", got)
	}

	code, body = doJSON(t, router, http.MethodGet, "/v1/matches/"+matchID+"/state", "")
	if code != http.StatusOK {
		t.Fatalf("get state: expected 200, got %d body=%v", code, body)
	}
	state := dataObject(t, body)
	teamA, _ := state["teamA"].(map[string]any)
	if got := teamA["summary"]; got != "4/0 (0.1)" {
		t.Fatalf("expected teamA summary 4/0 (0.1), got %v", got)
	}

	code, body = doJSON(t, router, http.MethodDelete, "/v1/matches/"+matchID+"/balls/last", "")
	if code != http.StatusOK {
		t.Fatalf("undo ball: expected 200, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodDelete, "/v1/matches/"+matchID+"/balls/last", "")
	if code != http.StatusNotFound {
		t.Fatalf("undo on empty ledger: expected 404, got %d", code)
	}
	if got := errorStatus(body); got != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %q", got)
	}
}

func TestCreateMatch_RejectsBadPayloads(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "self play", body: `{"team_a_id":"lhr-lions","team_b_id":"lhr-lions"}`},
		{name: "unknown field", body: `{"team_a_id":"lhr-lions","team_b_id":"kch-kings","venue":"x"}`},
		{name: "missing team", body: `{"team_a_id":"lhr-lions"}`},
		{name: "bad schedule time", body: `{"team_a_id":"lhr-lions","team_b_id":"kch-kings","scheduled_at":"tomorrow"}`},
		{name: "empty body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := doJSON(t, router, http.MethodPost, "/v1/matches", tt.body)
			if code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%v", code, body)
			}
			if got := errorStatus(body); got != "INVALID_ARGUMENT" {
				t.Fatalf("expected INVALID_ARGUMENT, got %q", got)
			}
		})
	}
}

func TestUpdateMatchResult_ClosedMatchConflicts(t *testing.T) {
	router := newTestRouter(t)
	matchID := createTestMatch(t, router)

	code, body := doJSON(t, router, http.MethodPut, "/v1/matches/"+matchID+"/result", `{"status":"cancelled"}`)
	if code != http.StatusOK {
		t.Fatalf("cancel match: expected 200, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodPut, "/v1/matches/"+matchID+"/result", `{"status":"completed","winner_team_id":"lhr-lions"}`)
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%v", code, body)
	}
	if got := errorStatus(body); got != "FAILED_PRECONDITION" {
		t.Fatalf("expected FAILED_PRECONDITION, got %q", got)
	}

	code, _ = doJSON(t, router, http.MethodPost, "/v1/matches/"+matchID+"/balls", fourByBat1)
	if code != http.StatusConflict {
		t.Fatalf("append on closed match: expected 409, got %d", code)
	}
}

func TestGetTournamentLeaderboard_RejectsUnknownType(t *testing.T) {
	router := newTestRouter(t)

	code, body := doJSON(t, router, http.MethodGet, "/v1/tournaments/"+memory.TournamentIDCityT20+"/leaderboard?type=fielding", "")
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%v", code, body)
	}

	code, body = doJSON(t, router, http.MethodGet, "/v1/tournaments/"+memory.TournamentIDCityT20+"/leaderboard?type=batting", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%v", code, body)
	}
	if got := dataObject(t, body)["type"]; got != "batting" {
		t.Fatalf("expected type batting, got %v", got)
	}
}

func TestGroupAndScheduleRoutes(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/tournaments/" + memory.TournamentIDCityT20

	code, body := doJSON(t, router, http.MethodPost, base+"/groups", `{"name":"Group A","max_teams":4,"qualifying_teams":2}`)
	if code != http.StatusCreated {
		t.Fatalf("create group: expected 201, got %d body=%v", code, body)
	}
	groupID, _ := dataObject(t, body)["id"].(string)

	for _, teamID := range []string{"lhr-lions", "kch-kings", "isb-united"} {
		code, body = doJSON(t, router, http.MethodPost, base+"/groups/"+groupID+"/teams", `{"team_id":"`+teamID+`"}`)
		if code != http.StatusOK {
			t.Fatalf("assign %s: expected 200, got %d body=%v", teamID, code, body)
		}
	}

	code, body = doJSON(t, router, http.MethodPost, base+"/schedule/group", "")
	if code != http.StatusCreated {
		t.Fatalf("generate group matches: expected 201, got %d body=%v", code, body)
	}
	fixtures, _ := body["data"].([]any)
	if len(fixtures) != 3 {
		t.Fatalf("expected 3 round robin fixtures, got %d", len(fixtures))
	}

	code, body = doJSON(t, router, http.MethodGet, base+"/points-table", "")
	if code != http.StatusOK {
		t.Fatalf("points table: expected 200, got %d body=%v", code, body)
	}
	rows, _ := body["data"].([]any)
	if len(rows) != 3 {
		t.Fatalf("expected 3 standings rows, got %d", len(rows))
	}

	code, _ = doJSON(t, router, http.MethodPost, base+"/schedule/knockout", "")
	if code != http.StatusBadRequest {
		t.Fatalf("knockout without qualifiers: expected 400, got %d", code)
	}
}
