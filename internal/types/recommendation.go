package types

// CropRecommendation is one suggested crop
type CropRecommendation struct {
	Crop                string  `json:"crop"`
	ExpectedYield       string  `json:"expected_yield"`
	ProfitMargin        string  `json:"profit_margin"`
	SustainabilityScore float64 `json:"sustainability_score"`
	SustainabilityBand  string  `json:"sustainability_band"`
	SoilRequirement     string  `json:"soil_requirement"`
	Season              string  `json:"season"`
}

// SoilConditions is the current-conditions panel for a location
type SoilConditions struct {
	Location     string  `json:"location"`
	SoilMoisture int     `json:"soil_moisture"`
	SoilPH       float64 `json:"soil_ph"`
}

// ConditionsResponse is empty until a location has been entered
type ConditionsResponse struct {
	Conditions *SoilConditions `json:"conditions"`
}

// RecommendationResponse wraps the crop list with its notification
type RecommendationResponse struct {
	Location        string               `json:"location"`
	Recommendations []CropRecommendation `json:"recommendations"`
	Toast           Toast                `json:"toast"`
}
