package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/gramin-samriddhi/backend/config"
	"github.com/gramin-samriddhi/backend/internal/database"
	"github.com/gramin-samriddhi/backend/internal/logging"
	"github.com/gramin-samriddhi/backend/internal/service"
	"github.com/gramin-samriddhi/backend/internal/types"
)

const testPassword = "testpassword123"

type testFarmer struct {
	email   string
	profile types.ProfileForm
}

var testFarmers = []testFarmer{
	{
		email: "asha@example.com",
		profile: types.ProfileForm{
			Name: "Asha Nair", Age: "34", Location: "Wayanad, Kerala",
			PreferredLanguage: "malayalam", PhoneNumber: "+91 98470 12345",
		},
	},
	{
		email: "ravi@example.com",
		profile: types.ProfileForm{
			Name: "Ravi Kumar", Age: "52", Location: "Guntur, Andhra Pradesh",
			PreferredLanguage: "telugu", PhoneNumber: "+91 99490 54321",
		},
	},
	{
		email: "sunita@example.com",
		profile: types.ProfileForm{
			Name: "Sunita Devi", Age: "45", Location: "Ludhiana, Punjab",
			PreferredLanguage: "hindi",
		},
	},
	// account without a profile, to see the empty form
	{email: "newfarmer@example.com"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	authService := service.NewAuthService(db, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil, logger)
	profileService := service.NewProfileService(service.NewGormFarmerStore(db), logger)

	created, err := seed(context.Background(), authService, profileService, logger)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	fmt.Printf("Created %d test farmers (password: %s)\n", created, testPassword)
}

// seed registers every test farmer that does not exist yet and saves its profile
func seed(ctx context.Context, auth service.IAuthService, profiles service.IProfileService, logger *zap.Logger) (int, error) {
	created := 0
	for _, f := range testFarmers {
		user, err := auth.Register(ctx, f.email, testPassword)
		if errors.Is(err, service.ErrUserExists) {
			logger.Info("user already exists, skipping", zap.String("email", f.email))
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to create %s: %w", f.email, err)
		}
		created++

		if f.profile.Name == "" {
			continue
		}
		if _, err := profiles.SaveProfile(ctx, user.ID, f.profile); err != nil {
			return created, fmt.Errorf("failed to save profile for %s: %w", f.email, err)
		}
		logger.Info("created test farmer", zap.String("email", f.email), zap.String("name", f.profile.Name))
	}
	return created, nil
}
