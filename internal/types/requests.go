package types

// RegisterRequest creates a new account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest exchanges credentials for a token
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SendMessageRequest is a chat input submission
type SendMessageRequest struct {
	Message string `json:"message"`
}

// AnalyzeImageRequest carries the selected image as a data URL
type AnalyzeImageRequest struct {
	Image string `json:"image"`
}

// RecommendationRequest carries the free-text farm location
type RecommendationRequest struct {
	Location string `json:"location"`
}
