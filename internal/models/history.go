package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is one assistant exchange. The chat screen does not write these yet.
type ChatMessage struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	FarmerID        uuid.UUID `gorm:"type:varchar(36);not null;index" json:"farmer_id"`
	Farmer          *Farmer   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Message         string    `gorm:"type:text;not null" json:"message"`
	Response        *string   `gorm:"type:text" json:"response"`
	MessageLanguage *string   `json:"message_language"`
	IsVoiceInput    *bool     `json:"is_voice_input"`
	CreatedAt       time.Time `json:"created_at"`
}

// CropRecommendation is one recommendation run with its soil and weather snapshot
type CropRecommendation struct {
	ID                  uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	FarmerID            uuid.UUID `gorm:"type:varchar(36);not null;index" json:"farmer_id"`
	Farmer              *Farmer   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SoilMoisture        *float64  `json:"soil_moisture"`
	SoilNitrogen        *float64  `json:"soil_nitrogen"`
	SoilPH              *float64  `gorm:"column:soil_ph" json:"soil_ph"`
	SoilPhosphorus      *float64  `json:"soil_phosphorus"`
	SoilPotassium       *float64  `json:"soil_potassium"`
	WeatherData         JSONB     `gorm:"type:jsonb" json:"weather_data"`
	RecommendedCrops    JSONB     `gorm:"type:jsonb" json:"recommended_crops"`
	ExpectedYield       JSONB     `gorm:"type:jsonb" json:"expected_yield"`
	ProfitMargin        JSONB     `gorm:"type:jsonb" json:"profit_margin"`
	SustainabilityScore *float64  `json:"sustainability_score"`
	CreatedAt           time.Time `json:"created_at"`
}

// DiseaseDetection is one analysed crop image
type DiseaseDetection struct {
	ID                uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	FarmerID          uuid.UUID `gorm:"type:varchar(36);not null;index" json:"farmer_id"`
	Farmer            *Farmer   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ImageURL          string    `gorm:"type:text;not null" json:"image_url"`
	DetectedDisease   *string   `json:"detected_disease"`
	ConfidenceScore   *float64  `json:"confidence_score"`
	Remedies          *string   `gorm:"type:text" json:"remedies"`
	DiagnosisLanguage *string   `json:"diagnosis_language"`
	CreatedAt         time.Time `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (r *CropRecommendation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (d *DiseaseDetection) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// All lists every model in dependency order, for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&User{},
		&Farmer{},
		&ChatMessage{},
		&CropRecommendation{},
		&DiseaseDetection{},
	}
}
