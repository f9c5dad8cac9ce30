package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/umair050/cricketApp-sub000/internal/config"
	"github.com/umair050/cricketApp-sub000/internal/domain/leaderboard"
	"github.com/umair050/cricketApp-sub000/internal/domain/player"
	"github.com/umair050/cricketApp-sub000/internal/domain/team"
	"github.com/umair050/cricketApp-sub000/internal/domain/unitofwork"
	repocache "github.com/umair050/cricketApp-sub000/internal/infrastructure/repository/cache"
	"github.com/umair050/cricketApp-sub000/internal/infrastructure/repository/memory"
	"github.com/umair050/cricketApp-sub000/internal/infrastructure/repository/postgres"
	"github.com/umair050/cricketApp-sub000/internal/interfaces/httpapi"
	"github.com/umair050/cricketApp-sub000/internal/platform/cache"
	idgen "github.com/umair050/cricketApp-sub000/internal/platform/id"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
	"github.com/umair050/cricketApp-sub000/internal/platform/resilience"
	"github.com/umair050/cricketApp-sub000/internal/usecase"
)

type storage struct {
	uow     unitofwork.UnitOfWork
	teams   team.Directory
	players player.Directory
	close   func() error
}

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases the storage backend and must run after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	st, err := newStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	st.teams, st.players = wrapDirectories(cfg, st.teams, st.players)

	ids := idgen.NewUUIDGenerator()
	locks := resilience.NewKeyLock()

	var boardCache *cache.Store[leaderboard.TournamentLeaderboard]
	if cfg.LeaderboardCacheTTL > 0 {
		boardCache = cache.NewStore[leaderboard.TournamentLeaderboard](cfg.LeaderboardCacheTTL)
	}

	pointsSvc := usecase.NewPointsTableService(st.uow, logger)
	leaderboardSvc := usecase.NewLeaderboardService(st.uow, boardCache, cfg.LeaderboardWorkers, logger)
	ledgerSvc := usecase.NewLedgerService(st.uow, st.players, usecase.NewScorecardAggregator(ids), locks, logger)
	matchSvc := usecase.NewMatchService(st.uow, st.teams, st.players, pointsSvc, locks, leaderboardSvc, ids, logger)
	scheduleSvc := usecase.NewScheduleService(st.uow, st.teams, ids, usecase.ScheduleConfig{
		MatchSpacing:     cfg.ScheduleMatchSpacing,
		KnockoutLeadTime: cfg.ScheduleKnockoutLead,
	}, logger)
	tournamentSvc := usecase.NewTournamentService(st.uow, st.teams, ids, logger)

	handler := httpapi.NewHandler(
		matchSvc,
		ledgerSvc,
		usecase.NewScoreService(st.uow),
		leaderboardSvc,
		pointsSvc,
		scheduleSvc,
		tournamentSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, st.close, nil
}

// wrapDirectories puts the read-through cache and a circuit breaker in front
// of the team and player registries. Each registry gets its own breaker.
func wrapDirectories(cfg config.Config, teams team.Directory, players player.Directory) (team.Directory, player.Directory) {
	breakerCfg := resilience.BreakerConfig{
		Enabled:          cfg.DirectoryBreakerEnabled,
		FailureThreshold: cfg.DirectoryBreakerFailures,
		OpenTimeout:      cfg.DirectoryBreakerOpenFor,
		HalfOpenTrials:   1,
	}

	var (
		teamCache   *cache.Store[repocache.Lookup[team.Team]]
		playerCache *cache.Store[repocache.Lookup[player.Player]]
	)
	if cfg.DirectoryCacheTTL > 0 {
		teamCache = repocache.NewLookupStore[team.Team](cfg.DirectoryCacheTTL, cfg.DirectoryMissTTL)
		playerCache = repocache.NewLookupStore[player.Player](cfg.DirectoryCacheTTL, cfg.DirectoryMissTTL)
	}

	return repocache.NewTeamDirectory(teams, teamCache, resilience.NewBreaker(breakerCfg)),
		repocache.NewPlayerDirectory(players, playerCache, resilience.NewBreaker(breakerCfg))
}

func newStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if cfg.DBAutoMigrate {
			if err := runMigrations(ctx, cfg, logger); err != nil {
				return storage{}, err
			}
		}
		db, err := openDB(ctx, cfg)
		if err != nil {
			return storage{}, err
		}
		if cfg.DBSeedEnabled {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return storage{}, fmt.Errorf("seed postgres: %w", err)
			}
		}
		logger.InfoContext(ctx, "storage ready", "driver", cfg.StorageDriver, "db", dbNameFromURL(cfg.DBURL), "dsn", redactDBURL(cfg.DBURL))
		return storage{
			uow:     postgres.NewStore(db),
			teams:   postgres.NewTeamDirectory(db),
			players: postgres.NewPlayerDirectory(db),
			close:   db.Close,
		}, nil
	default:
		store := memory.NewStore()
		if err := store.Seed(ctx, memory.SeedTournaments()); err != nil {
			return storage{}, fmt.Errorf("seed memory store: %w", err)
		}
		logger.InfoContext(ctx, "storage ready", "driver", config.StorageMemory)
		return storage{
			uow:     store,
			teams:   memory.NewTeamDirectory(memory.SeedTeams()),
			players: memory.NewPlayerDirectory(memory.SeedPlayers()),
			close:   func() error { return nil },
		}, nil
	}
}
