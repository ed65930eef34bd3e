package core

import (
	"context"

	"github.com/example/cmail/internal/db"
	"github.com/example/cmail/internal/models"
)

// dashboardService reads the delivery log back for rendering. It has no
// state of its own: the append-only log is the single source of truth.
type dashboardService struct {
	deliveries db.DeliveryLogRepository
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(deliveries db.DeliveryLogRepository) DashboardService {
	return &dashboardService{deliveries: deliveries}
}

func (s *dashboardService) ReadLog(ctx context.Context, owner string) ([]models.DeliveryLogEntry, error) {
	if owner == "" {
		return nil, ErrNotAuthenticated
	}
	return s.deliveries.List(ctx, owner)
}

func (s *dashboardService) Stats(ctx context.Context, owner string) (*DashboardStats, error) {
	entries, err := s.ReadLog(ctx, owner)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case models.StatusSent:
			stats.Sent++
		case models.StatusFailed:
			stats.Failed++
		case models.StatusScheduled:
			stats.Scheduled++
		}
	}
	return stats, nil
}
