package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/umair050/cricketApp-sub000/db"
	"github.com/umair050/cricketApp-sub000/internal/config"
	"github.com/umair050/cricketApp-sub000/internal/platform/logging"
)

// NewMigrator builds a migrator for cfg.DBURL. An empty dir uses the
// migrations embedded in the binary.
func NewMigrator(cfg config.Config, dir string, logger *logging.Logger) (*migrate.Migrate, error) {
	if logger == nil {
		logger = logging.Default()
	}
	dbURL := postgresDSN(cfg)

	var (
		m   *migrate.Migrate
		err error
	)
	if dir = strings.TrimSpace(dir); dir != "" {
		abs, absErr := filepath.Abs(dir)
		if absErr != nil {
			return nil, fmt.Errorf("resolve migrations dir: %w", absErr)
		}
		m, err = migrate.New("file://"+filepath.ToSlash(abs), dbURL)
	} else {
		src, srcErr := iofs.New(db.Migrations, db.MigrationsPath)
		if srcErr != nil {
			return nil, fmt.Errorf("open embedded migrations: %w", srcErr)
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, dbURL)
	}
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	m.Log = migrateLogger{logger: logger}
	return m, nil
}

// CloseMigrator releases the source and database handles.
func CloseMigrator(m *migrate.Migrate) error {
	srcErr, dbErr := m.Close()
	return errors.Join(srcErr, dbErr)
}

func runMigrations(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	m, err := NewMigrator(cfg, "", logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := CloseMigrator(m); err != nil {
			logger.WarnContext(ctx, "close migrator failed", "error", err)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.InfoContext(ctx, "migrations applied", "version", version, "dirty", dirty)
	return nil
}

type migrateLogger struct {
	logger *logging.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return false
}
