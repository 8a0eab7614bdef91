package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"

	"github.com/shopspring/decimal"
)

// CreateObligationRequest carries the client-supplied fields of a tax
// obligation. The owning user id is never taken from the payload; it is
// forced to the authenticated caller.
type CreateObligationRequest struct {
	Name     string    `json:"name" binding:"required"`
	Amount   string    `json:"amount" binding:"required"`
	DueDate  time.Time `json:"dueDate" binding:"required"`
	Status   string    `json:"status" binding:"required,oneof=pending paid overdue"`
	Category string    `json:"category" binding:"required"`
}

// ObligationService defines business logic for tax obligations
type ObligationService interface {
	ListForUser(ctx context.Context, userID int64) ([]model.TaxObligation, error)
	ListUpcoming(ctx context.Context, userID int64) ([]model.TaxObligation, error)
	Create(ctx context.Context, userID int64, req CreateObligationRequest) (*model.TaxObligation, error)
}

type obligationService struct {
	obligations repository.ObligationRepository
	now         func() time.Time
}

// NewObligationService returns a new instance of ObligationService
func NewObligationService(obligations repository.ObligationRepository) ObligationService {
	return &obligationService{obligations: obligations, now: time.Now}
}

func (s *obligationService) ListForUser(ctx context.Context, userID int64) ([]model.TaxObligation, error) {
	return s.obligations.ListForUser(ctx, userID)
}

func (s *obligationService) ListUpcoming(ctx context.Context, userID int64) ([]model.TaxObligation, error) {
	return s.obligations.ListUpcomingForUser(ctx, userID, s.now())
}

func (s *obligationService) Create(ctx context.Context, userID int64, req CreateObligationRequest) (*model.TaxObligation, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", req.Amount, ErrInvalidInput)
	}

	obligation := &model.TaxObligation{
		UserID:   userID,
		Name:     req.Name,
		Amount:   amount,
		DueDate:  req.DueDate,
		Status:   req.Status,
		Category: req.Category,
	}
	if err := s.obligations.Create(ctx, obligation); err != nil {
		return nil, err
	}
	return obligation, nil
}
