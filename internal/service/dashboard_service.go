package service

import (
	"context"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates a user's tax position for the portal landing page
type DashboardSummary struct {
	PendingCount        int             `json:"pendingCount"`
	PendingTotal        decimal.Decimal `json:"pendingTotal"`
	PaidCount           int             `json:"paidCount"`
	PaidTotal           decimal.Decimal `json:"paidTotal"`
	OverdueCount        int             `json:"overdueCount"`
	UpcomingCount       int             `json:"upcomingCount"`
	NextDueDate         *time.Time      `json:"nextDueDate"`
	UnreadNotifications int             `json:"unreadNotifications"`
}

// DashboardService computes per-user aggregates over the repositories, so the
// same logic serves both the in-memory and the Postgres store.
type DashboardService interface {
	Summary(ctx context.Context, userID int64) (*DashboardSummary, error)
}

type dashboardService struct {
	obligations   repository.ObligationRepository
	notifications repository.NotificationRepository
	now           func() time.Time
}

// NewDashboardService returns a new instance of DashboardService
func NewDashboardService(obligations repository.ObligationRepository, notifications repository.NotificationRepository) DashboardService {
	return &dashboardService{obligations: obligations, notifications: notifications, now: time.Now}
}

func (s *dashboardService) Summary(ctx context.Context, userID int64) (*DashboardSummary, error) {
	summary := &DashboardSummary{
		PendingTotal: decimal.Zero,
		PaidTotal:    decimal.Zero,
	}

	obligations, err := s.obligations.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, obligation := range obligations {
		switch obligation.Status {
		case model.ObligationPending:
			summary.PendingCount++
			summary.PendingTotal = summary.PendingTotal.Add(obligation.Amount)
		case model.ObligationPaid:
			summary.PaidCount++
			summary.PaidTotal = summary.PaidTotal.Add(obligation.Amount)
		case model.ObligationOverdue:
			summary.OverdueCount++
			summary.PendingTotal = summary.PendingTotal.Add(obligation.Amount)
		}
	}

	upcoming, err := s.obligations.ListUpcomingForUser(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}
	summary.UpcomingCount = len(upcoming)
	if len(upcoming) > 0 {
		next := upcoming[0].DueDate
		summary.NextDueDate = &next
	}

	unread, err := s.notifications.ListUnreadForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.UnreadNotifications = len(unread)

	return summary, nil
}
