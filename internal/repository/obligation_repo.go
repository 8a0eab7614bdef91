package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"

	"gorm.io/gorm"
)

// ObligationRepository defines the interface for data access of TaxObligation entities
type ObligationRepository interface {
	Create(ctx context.Context, obligation *model.TaxObligation) error
	GetByID(ctx context.Context, id int64) (*model.TaxObligation, error)
	ListForUser(ctx context.Context, userID int64) ([]model.TaxObligation, error)
	// ListUpcomingForUser returns the user's pending obligations due strictly after now,
	// soonest first.
	ListUpcomingForUser(ctx context.Context, userID int64, now time.Time) ([]model.TaxObligation, error)
	Update(ctx context.Context, obligation *model.TaxObligation) error
}

type obligationRepository struct {
	db *gorm.DB
}

// NewObligationRepository returns a Postgres-backed ObligationRepository
func NewObligationRepository(db *gorm.DB) ObligationRepository {
	return &obligationRepository{db: db}
}

func (r *obligationRepository) Create(ctx context.Context, obligation *model.TaxObligation) error {
	return r.db.WithContext(ctx).Create(obligation).Error
}

func (r *obligationRepository) GetByID(ctx context.Context, id int64) (*model.TaxObligation, error) {
	var obligation model.TaxObligation
	if err := r.db.WithContext(ctx).First(&obligation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &obligation, nil
}

func (r *obligationRepository) ListForUser(ctx context.Context, userID int64) ([]model.TaxObligation, error) {
	var obligations []model.TaxObligation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&obligations).Error
	return obligations, err
}

func (r *obligationRepository) ListUpcomingForUser(ctx context.Context, userID int64, now time.Time) ([]model.TaxObligation, error) {
	var obligations []model.TaxObligation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND due_date > ? AND status = ?", userID, now, model.ObligationPending).
		Order("due_date ASC").
		Find(&obligations).Error
	return obligations, err
}

func (r *obligationRepository) Update(ctx context.Context, obligation *model.TaxObligation) error {
	return r.db.WithContext(ctx).Save(obligation).Error
}
