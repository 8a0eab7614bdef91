package repository

import (
	"context"
	"errors"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"

	"gorm.io/gorm"
)

// InquiryRepository defines the interface for data access of Inquiry entities
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
	GetByID(ctx context.Context, id int64) (*model.Inquiry, error)
	ListForUser(ctx context.Context, userID int64) ([]model.Inquiry, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Inquiry, error)
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository returns a Postgres-backed InquiryRepository
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *inquiryRepository) GetByID(ctx context.Context, id int64) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	if err := r.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) ListForUser(ctx context.Context, userID int64) ([]model.Inquiry, error) {
	var inquiries []model.Inquiry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&inquiries).Error
	return inquiries, err
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Inquiry, error) {
	inquiry, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	inquiry.Status = status
	if err := r.db.WithContext(ctx).Save(inquiry).Error; err != nil {
		return nil, err
	}
	return inquiry, nil
}
