package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/gramin-samriddhi/backend/internal/models"
	"github.com/gramin-samriddhi/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockFarmerStore is a mock implementation of the FarmerStore interface
type MockFarmerStore struct {
	mock.Mock
}

func (m *MockFarmerStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Farmer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Farmer), args.Error(1)
}

func (m *MockFarmerStore) Upsert(ctx context.Context, farmer *models.Farmer) error {
	args := m.Called(ctx, farmer)
	return args.Error(0)
}

// MockProfileService is a mock implementation of the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) LoadProfile(ctx context.Context, userID uuid.UUID) (types.ProfileForm, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(types.ProfileForm), args.Error(1)
}

func (m *MockProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, form types.ProfileForm) (types.ProfileForm, error) {
	args := m.Called(ctx, userID, form)
	return args.Get(0).(types.ProfileForm), args.Error(1)
}

func (m *MockProfileService) Saving(userID uuid.UUID) bool {
	args := m.Called(userID)
	return args.Bool(0)
}

func (m *MockProfileService) Languages() []types.Language {
	args := m.Called()
	return args.Get(0).([]types.Language)
}
