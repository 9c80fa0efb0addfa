package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/gramin-samriddhi/backend/internal/models"
	"github.com/gramin-samriddhi/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, *types.TokenClaims, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
	SignOut(ctx context.Context, claims *types.TokenClaims) error
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IProfileService defines the interface for farmer profile operations
type IProfileService interface {
	LoadProfile(ctx context.Context, userID uuid.UUID) (types.ProfileForm, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, form types.ProfileForm) (types.ProfileForm, error)
	Saving(userID uuid.UUID) bool
	Languages() []types.Language
}

// IDetectionService defines the interface for the disease detection screen
type IDetectionService interface {
	EncodeImage(r io.Reader) (types.LoadImageResponse, error)
	AnalyzeImage(ctx context.Context, image string) (types.DetectionResult, error)
	CameraToast() types.Toast
}

// IRecommendationService defines the interface for the crop recommendation screen
type IRecommendationService interface {
	CurrentConditions(location string) *types.SoilConditions
	Recommend(ctx context.Context, location string) ([]types.CropRecommendation, error)
}

// IDashboardService defines the interface for the home screen
type IDashboardService interface {
	Dashboard() types.Dashboard
	SendMessage(ctx context.Context, userID uuid.UUID, message string) (types.SendMessageResponse, error)
}

// FarmerStore reads and writes farmer profile rows
type FarmerStore interface {
	// FindByUserID returns nil without error when the user has no profile yet
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Farmer, error)
	// Upsert inserts the row or rewrites the existing row for the same user
	Upsert(ctx context.Context, farmer *models.Farmer) error
}
