package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/gramin-samriddhi/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFarmerStore keeps farmer profiles in the farmers table
type GormFarmerStore struct {
	db *gorm.DB
}

var _ FarmerStore = (*GormFarmerStore)(nil)

func NewGormFarmerStore(db *gorm.DB) *GormFarmerStore {
	return &GormFarmerStore{db: db}
}

func (s *GormFarmerStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Farmer, error) {
	var farmer models.Farmer
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Take(&farmer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &farmer, nil
}

// Upsert is a single INSERT ... ON CONFLICT (user_id) DO UPDATE
func (s *GormFarmerStore) Upsert(ctx context.Context, farmer *models.Farmer) error {
	return upsertFarmer(s.db.WithContext(ctx), farmer).Error
}

func upsertFarmer(db *gorm.DB, farmer *models.Farmer) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(models.FarmerUpsertColumns),
	}).Create(farmer)
}
