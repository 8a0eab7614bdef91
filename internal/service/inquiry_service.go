package service

import (
	"context"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"
)

// CreateInquiryRequest carries the client-supplied fields of a support
// inquiry. Status is not accepted from the client: new inquiries always
// start "open".
type CreateInquiryRequest struct {
	Subject          string   `json:"subject" binding:"required"`
	Message          string   `json:"message" binding:"required"`
	SupportDocuments []string `json:"supportDocuments"`
}

// InquiryService defines business logic for support inquiries
type InquiryService interface {
	ListForUser(ctx context.Context, userID int64) ([]model.Inquiry, error)
	Get(ctx context.Context, userID, id int64) (*model.Inquiry, error)
	Create(ctx context.Context, userID int64, req CreateInquiryRequest) (*model.Inquiry, error)
}

type inquiryService struct {
	inquiries repository.InquiryRepository
}

// NewInquiryService returns a new instance of InquiryService
func NewInquiryService(inquiries repository.InquiryRepository) InquiryService {
	return &inquiryService{inquiries: inquiries}
}

func (s *inquiryService) ListForUser(ctx context.Context, userID int64) ([]model.Inquiry, error) {
	return s.inquiries.ListForUser(ctx, userID)
}

func (s *inquiryService) Get(ctx context.Context, userID, id int64) (*model.Inquiry, error) {
	inquiry, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry.UserID != userID {
		return nil, ErrForbidden
	}
	return inquiry, nil
}

func (s *inquiryService) Create(ctx context.Context, userID int64, req CreateInquiryRequest) (*model.Inquiry, error) {
	inquiry := &model.Inquiry{
		UserID:           userID,
		Subject:          req.Subject,
		Message:          req.Message,
		Status:           model.InquiryOpen,
		SupportDocuments: req.SupportDocuments,
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}
