package repository

import (
	"context"
	"errors"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"

	"gorm.io/gorm"
)

// DocumentRepository defines the interface for data access of Document entities
type DocumentRepository interface {
	Create(ctx context.Context, document *model.Document) error
	GetByID(ctx context.Context, id int64) (*model.Document, error)
	ListForUser(ctx context.Context, userID int64) ([]model.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository returns a Postgres-backed DocumentRepository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *model.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id int64) (*model.Document, error) {
	var document model.Document
	if err := r.db.WithContext(ctx).First(&document, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *documentRepository) ListForUser(ctx context.Context, userID int64) ([]model.Document, error) {
	var documents []model.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("upload_date DESC, id DESC").
		Find(&documents).Error
	return documents, err
}
