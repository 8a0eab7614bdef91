package service

import (
	"context"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"
)

// CreateDocumentRequest carries the client-supplied fields of a document
type CreateDocumentRequest struct {
	Title      string     `json:"title" binding:"required"`
	Type       string     `json:"type" binding:"required"`
	FileURL    string     `json:"fileUrl" binding:"required"`
	UploadDate *time.Time `json:"uploadDate"`
	Year       *int       `json:"year"`
}

// DocumentService defines business logic for documents
type DocumentService interface {
	ListForUser(ctx context.Context, userID int64) ([]model.Document, error)
	Get(ctx context.Context, userID, id int64) (*model.Document, error)
	Create(ctx context.Context, userID int64, req CreateDocumentRequest) (*model.Document, error)
}

type documentService struct {
	documents repository.DocumentRepository
}

// NewDocumentService returns a new instance of DocumentService
func NewDocumentService(documents repository.DocumentRepository) DocumentService {
	return &documentService{documents: documents}
}

func (s *documentService) ListForUser(ctx context.Context, userID int64) ([]model.Document, error) {
	return s.documents.ListForUser(ctx, userID)
}

func (s *documentService) Get(ctx context.Context, userID, id int64) (*model.Document, error) {
	document, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if document.UserID != userID {
		return nil, ErrForbidden
	}
	return document, nil
}

func (s *documentService) Create(ctx context.Context, userID int64, req CreateDocumentRequest) (*model.Document, error) {
	document := &model.Document{
		UserID:  userID,
		Title:   req.Title,
		Type:    req.Type,
		FileURL: req.FileURL,
		Year:    req.Year,
	}
	if req.UploadDate != nil {
		document.UploadDate = *req.UploadDate
	}

	if err := s.documents.Create(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}
