package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/gramin-samriddhi/backend/internal/models"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// RunMigrations brings the schema up to date. SQLite databases, used in tests,
// are auto-migrated from the models; PostgreSQL runs the embedded SQL files
// over a dedicated connection to dbURL.
func RunMigrations(db *gorm.DB, dbURL string, logger *zap.Logger) error {
	if db != nil && db.Dialector.Name() == "sqlite" {
		logger.Info("using GORM auto-migration for SQLite")
		return AutoMigrate(db)
	}

	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return err
	}
	defer closeFn(logger)

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to apply (database up-to-date)")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("applied migrations", zap.Uint("version", version))
	return nil
}

// RollbackMigrations reverts the last steps migrations
func RollbackMigrations(dbURL string, steps int, logger *zap.Logger) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return err
	}
	defer closeFn(logger)

	if err := m.Steps(-steps); err != nil {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}

	version, dirty, verr := m.Version()
	if errors.Is(verr, migrate.ErrNilVersion) {
		logger.Info("rolled back all migrations")
		return nil
	}
	logger.Info("rolled back migrations", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// MigrationVersion reports the applied schema version. A fresh database reports 0.
func MigrationVersion(dbURL string, logger *zap.Logger) (uint, bool, error) {
	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return 0, false, err
	}
	defer closeFn(logger)

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// AutoMigrate creates every table from the gorm models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

func newMigrator(dbURL string) (*migrate.Migrate, func(*zap.Logger), error) {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	sqlDB, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open migration connection: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return nil, nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	closeFn := func(logger *zap.Logger) {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("failed to close migration source", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("failed to close migration database", zap.Error(dbErr))
		}
	}
	return m, closeFn, nil
}
