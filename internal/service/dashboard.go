package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/gramin-samriddhi/backend/internal/types"
	"go.uber.org/zap"
)

// DashboardService backs the home screen. Stats and recent chats are fixed
// until the assistant and market feeds exist.
type DashboardService struct {
	logger *zap.Logger
}

var _ IDashboardService = (*DashboardService)(nil)

func NewDashboardService(logger *zap.Logger) *DashboardService {
	return &DashboardService{logger: logger}
}

func (s *DashboardService) Dashboard() types.Dashboard {
	return types.Dashboard{
		Greeting: "Welcome, Farmer!",
		Subtitle: "How can I help you today?",
		Stats: []types.StatCard{
			{Label: "Weather", Value: "28°C", Icon: "cloud", Color: "blue"},
			{Label: "Soil Health", Value: "Good", Icon: "leaf", Color: "green"},
			{Label: "Market Price", Value: "₹45/kg", Icon: "trending-up", Color: "orange"},
			{Label: "Alerts", Value: "2", Icon: "alert-circle", Color: "red"},
		},
		RecentChats: []types.Conversation{
			{Question: "Best crop for monsoon season?", Answer: "Rice and cotton are ideal for monsoon..."},
			{Question: "How to prevent leaf spot disease?", Answer: "Use copper-based fungicides and maintain proper spacing..."},
		},
	}
}

// SendMessage accepts a chat message and hands back the cleared input.
// Messages are neither stored nor answered.
func (s *DashboardService) SendMessage(ctx context.Context, userID uuid.UUID, message string) (types.SendMessageResponse, error) {
	if strings.TrimSpace(message) == "" {
		return types.SendMessageResponse{}, ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return types.SendMessageResponse{}, err
	}

	s.logger.Debug("chat message discarded", zap.String("user_id", userID.String()), zap.Int("length", len(message)))
	return types.SendMessageResponse{Message: ""}, nil
}
