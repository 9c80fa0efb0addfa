package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/gramin-samriddhi/backend/config"
	"github.com/gramin-samriddhi/backend/internal/database"
	"github.com/gramin-samriddhi/backend/internal/logging"
)

func main() {
	down := flag.Int("down", 0, "Roll back the given number of migrations")
	showVersion := flag.Bool("version", false, "Print the current schema version and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	dbURL := cfg.Database.URL()
	if err := ping(dbURL); err != nil {
		logger.Fatal("database unreachable", zap.String("error", logging.SanitizeError(err)))
	}

	switch {
	case *showVersion:
		version, dirty, err := database.MigrationVersion(dbURL, logger)
		if err != nil {
			logger.Fatal("failed to read schema version", zap.Error(err))
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
	case *down > 0:
		if err := database.RollbackMigrations(dbURL, *down, logger); err != nil {
			logger.Fatal("rollback failed", zap.Error(err))
		}
		fmt.Printf("Rolled back %d migration(s)\n", *down)
	default:
		if err := database.RunMigrations(nil, dbURL, logger); err != nil {
			logger.Fatal("migration failed", zap.Error(err))
		}
		fmt.Println("All migrations applied successfully.")
	}
}

// ping fails fast with a readable error before golang-migrate opens its own connection
func ping(dbURL string) error {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
