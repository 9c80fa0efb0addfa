package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gramin-samriddhi/backend/config"
	"github.com/gramin-samriddhi/backend/internal/api"
	"github.com/gramin-samriddhi/backend/internal/database"
	"github.com/gramin-samriddhi/backend/internal/logging"
	"github.com/gramin-samriddhi/backend/internal/middleware"
	"github.com/gramin-samriddhi/backend/internal/server"
	"github.com/gramin-samriddhi/backend/internal/service"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	db, err := database.New(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}()

	if err := database.RunMigrations(db, cfg.Database.URL(), logger); err != nil {
		return err
	}

	// Redis is optional: without it revocations and rate limits stay in process memory
	var redisClient *redis.Client
	var revoker service.TokenRevoker
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory token revocation and rate limits", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			revoker = service.NewRedisRevoker(redisClient)
		}
	}

	manifest, err := config.LoadMobileManifest(cfg.MobileManifestPath)
	if err != nil {
		return err
	}

	authService := service.NewAuthService(db, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, revoker, logger)
	deps := api.Dependencies{
		DB:                    db,
		Auth:                  authService,
		Profiles:              service.NewProfileService(service.NewGormFarmerStore(db), logger),
		Detection:             service.NewDetectionService(cfg.Features.DetectionDelay, cfg.Features.MaxImageBytes, logger),
		Recommendations:       service.NewRecommendationService(cfg.Features.RecommendationDelay, logger),
		Dashboard:             service.NewDashboardService(logger),
		Sessions:              middleware.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SecureCookies, cfg.Auth.TokenTTL),
		Manifest:              manifest,
		AnalysisLimiter:       middleware.NewAnalysisLimiter(redisClient, cfg.RateLimit.Window, cfg.RateLimit.AnalysisLimit),
		RecommendationLimiter: middleware.NewRecommendationLimiter(redisClient, cfg.RateLimit.Window, cfg.RateLimit.RecommendLimit),
	}

	srv := server.New(cfg.Server, deps, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
