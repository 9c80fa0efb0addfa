package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FarmerUpsertColumns are rewritten when a profile save hits an existing row
var FarmerUpsertColumns = []string{"name", "age", "location", "preferred_language", "phone_number", "updated_at"}

// Farmer is the one profile row per user. Optional columns are pointers so that
// an unset value is stored as NULL rather than a zero value.
type Farmer struct {
	ID                uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID            uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Name              string    `gorm:"not null" json:"name"`
	Age               *int      `json:"age"`
	Location          *string   `json:"location"`
	PreferredLanguage *string   `json:"preferred_language"`
	PhoneNumber       *string   `json:"phone_number"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (f *Farmer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
