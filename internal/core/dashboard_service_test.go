package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/cmail/internal/models"
)

func TestDashboardStats(t *testing.T) {
	t.Parallel()
	deliveries := newFakeDeliveryLogRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	seed := []models.DeliveryLogEntry{
		{Recipient: "a@x.com", Status: models.StatusSent, Provider: "Gmail", Timestamp: now},
		{Recipient: "b@x.com", Status: models.StatusSent, Provider: "Gmail", Timestamp: now},
		{Recipient: "c@x.com", Status: models.StatusFailed, Provider: "Outlook", Timestamp: now, Error: "bounced"},
		{Recipient: "d@x.com", Status: models.StatusScheduled, Provider: "Outlook", Timestamp: now.Add(time.Hour)},
	}
	for _, e := range seed {
		require.NoError(t, deliveries.Append(ctx, testOwner, e))
	}

	svc := NewDashboardService(deliveries)

	stats, err := svc.Stats(ctx, testOwner)
	require.NoError(t, err)
	require.Equal(t, &DashboardStats{Total: 4, Sent: 2, Failed: 1, Scheduled: 1}, stats)
}

func TestDashboardReadLog_EmptyForNewOwner(t *testing.T) {
	t.Parallel()
	svc := NewDashboardService(newFakeDeliveryLogRepo())

	entries, err := svc.ReadLog(context.Background(), "fresh@x.com")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestDashboard_NotAuthenticated(t *testing.T) {
	t.Parallel()
	svc := NewDashboardService(newFakeDeliveryLogRepo())

	_, err := svc.ReadLog(context.Background(), "")
	require.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = svc.Stats(context.Background(), "")
	require.ErrorIs(t, err, ErrNotAuthenticated)
}
