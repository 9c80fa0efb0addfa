package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboard(t *testing.T) {
	d := NewDashboardService(zap.NewNop()).Dashboard()

	require.Len(t, d.Stats, 4)
	labels := []string{d.Stats[0].Label, d.Stats[1].Label, d.Stats[2].Label, d.Stats[3].Label}
	assert.Equal(t, []string{"Weather", "Soil Health", "Market Price", "Alerts"}, labels)
	assert.Equal(t, "28°C", d.Stats[0].Value)
	assert.Equal(t, "₹45/kg", d.Stats[2].Value)
	assert.Len(t, d.RecentChats, 2)
}

func TestSendMessage(t *testing.T) {
	svc := NewDashboardService(zap.NewNop())

	resp, err := svc.SendMessage(context.Background(), uuid.New(), "When should I sow wheat?")
	require.NoError(t, err)
	assert.Empty(t, resp.Message)

	_, err = svc.SendMessage(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
