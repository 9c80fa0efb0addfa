package service

import (
	"context"
	"strings"
	"time"

	"github.com/gramin-samriddhi/backend/internal/types"
	"go.uber.org/zap"
)

// Sustainability bands
const (
	SustainabilityGood = "good"
	SustainabilityFair = "fair"
	SustainabilityPoor = "poor"
)

var cropRecommendations = []types.CropRecommendation{
	{
		Crop:                "Rice",
		ExpectedYield:       "4.5 tons/hectare",
		ProfitMargin:        "₹35,000/hectare",
		SustainabilityScore: 8.5,
		SoilRequirement:     "pH 5.5-7.0, High moisture",
		Season:              "Kharif",
	},
	{
		Crop:                "Cotton",
		ExpectedYield:       "2.2 tons/hectare",
		ProfitMargin:        "₹42,000/hectare",
		SustainabilityScore: 7.2,
		SoilRequirement:     "pH 6.0-8.0, Well-drained",
		Season:              "Kharif",
	},
	{
		Crop:                "Wheat",
		ExpectedYield:       "3.8 tons/hectare",
		ProfitMargin:        "₹28,000/hectare",
		SustainabilityScore: 9.1,
		SoilRequirement:     "pH 6.0-7.5, Loamy soil",
		Season:              "Rabi",
	},
}

// RecommendationService backs the crop recommendation screen. The crop list
// does not depend on the location yet.
type RecommendationService struct {
	delay  time.Duration
	logger *zap.Logger
}

var _ IRecommendationService = (*RecommendationService)(nil)

func NewRecommendationService(delay time.Duration, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{delay: delay, logger: logger}
}

// CurrentConditions returns the soil panel once a location has been entered
func (s *RecommendationService) CurrentConditions(location string) *types.SoilConditions {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil
	}
	return &types.SoilConditions{
		Location:     location,
		SoilMoisture: 72,
		SoilPH:       6.8,
	}
}

// Recommend waits out the simulated lookup and returns the crop list in a fixed order
func (s *RecommendationService) Recommend(ctx context.Context, location string) ([]types.CropRecommendation, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrLocationRequired
	}

	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	out := make([]types.CropRecommendation, len(cropRecommendations))
	for i, c := range cropRecommendations {
		c.SustainabilityBand = SustainabilityBand(c.SustainabilityScore)
		out[i] = c
	}
	s.logger.Debug("recommendations generated", zap.String("location", location), zap.Int("count", len(out)))
	return out, nil
}

// SustainabilityBand buckets a 0-10 sustainability score
func SustainabilityBand(score float64) string {
	switch {
	case score >= 8:
		return SustainabilityGood
	case score >= 6:
		return SustainabilityFair
	default:
		return SustainabilityPoor
	}
}
