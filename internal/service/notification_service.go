package service

import (
	"context"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"
)

// Notifier delivers a created notification to the owner's live connections.
// Satisfied by the websocket hub; a nil Notifier disables push.
type Notifier interface {
	Push(userID int64, payload interface{})
}

// CreateNotificationRequest carries the client-supplied fields of a notification
type CreateNotificationRequest struct {
	Title   string     `json:"title" binding:"required"`
	Message string     `json:"message" binding:"required"`
	Type    string     `json:"type" binding:"required"`
	Date    *time.Time `json:"date"`
}

// NotificationService defines business logic for notifications
type NotificationService interface {
	ListForUser(ctx context.Context, userID int64) ([]model.Notification, error)
	ListUnreadForUser(ctx context.Context, userID int64) ([]model.Notification, error)
	Create(ctx context.Context, userID int64, req CreateNotificationRequest) (*model.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) (*model.Notification, error)
}

type notificationService struct {
	notifications repository.NotificationRepository
	notifier      Notifier
}

// NewNotificationService returns a new instance of NotificationService
func NewNotificationService(notifications repository.NotificationRepository, notifier Notifier) NotificationService {
	return &notificationService{notifications: notifications, notifier: notifier}
}

func (s *notificationService) ListForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.notifications.ListForUser(ctx, userID)
}

func (s *notificationService) ListUnreadForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.notifications.ListUnreadForUser(ctx, userID)
}

func (s *notificationService) Create(ctx context.Context, userID int64, req CreateNotificationRequest) (*model.Notification, error) {
	notification := &model.Notification{
		UserID:  userID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	}
	if req.Date != nil {
		notification.Date = *req.Date
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Push(notification.UserID, notification)
	}
	return notification, nil
}

// MarkRead flips the read flag. Idempotent: marking an already-read
// notification succeeds and leaves it read. A notification owned by another
// user is reported as not found rather than forbidden.
func (s *notificationService) MarkRead(ctx context.Context, userID, id int64) (*model.Notification, error) {
	notification, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return s.notifications.MarkRead(ctx, id)
}
