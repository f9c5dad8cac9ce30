package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
	"github.com/umair050/cricketApp-sub000/internal/usecase"
)

type Handler struct {
	matchService       *usecase.MatchService
	ledgerService      *usecase.LedgerService
	scoreService       *usecase.ScoreService
	leaderboardService *usecase.LeaderboardService
	pointsTableService *usecase.PointsTableService
	scheduleService    *usecase.ScheduleService
	tournamentService  *usecase.TournamentService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	ledgerService *usecase.LedgerService,
	scoreService *usecase.ScoreService,
	leaderboardService *usecase.LeaderboardService,
	pointsTableService *usecase.PointsTableService,
	scheduleService *usecase.ScheduleService,
	tournamentService *usecase.TournamentService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:       matchService,
		ledgerService:      ledgerService,
		scoreService:       scoreService,
		leaderboardService: leaderboardService,
		pointsTableService: pointsTableService,
		scheduleService:    scheduleService,
		tournamentService:  tournamentService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest reads a JSON body into dst, rejecting unknown fields, and
// runs the validate tags.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}
