package repository

import (
	"context"
	"errors"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"

	"gorm.io/gorm"
)

// NotificationRepository defines the interface for data access of Notification entities
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	GetByID(ctx context.Context, id int64) (*model.Notification, error)
	ListForUser(ctx context.Context, userID int64) ([]model.Notification, error)
	ListUnreadForUser(ctx context.Context, userID int64) ([]model.Notification, error)
	// MarkRead sets the read flag and returns the updated row. Idempotent.
	MarkRead(ctx context.Context, id int64) (*model.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a Postgres-backed NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) ListUnreadForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Order("date DESC, id DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	notification, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	notification.Read = true
	if err := r.db.WithContext(ctx).Save(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}
