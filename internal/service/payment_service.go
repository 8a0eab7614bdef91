package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CreatePaymentRequest carries the client-supplied fields of a payment.
// Reference is generated server-side when omitted.
type CreatePaymentRequest struct {
	ObligationID *int64     `json:"obligationId"`
	Amount       string     `json:"amount" binding:"required"`
	Date         *time.Time `json:"date"`
	Method       string     `json:"method" binding:"required"`
	Status       string     `json:"status" binding:"required,oneof=processing completed failed"`
	Reference    string     `json:"reference"`
}

// PaymentService defines business logic for payments
type PaymentService interface {
	ListForUser(ctx context.Context, userID int64) ([]model.Payment, error)
	Get(ctx context.Context, userID, id int64) (*model.Payment, error)
	Create(ctx context.Context, userID int64, req CreatePaymentRequest) (*model.Payment, error)
}

type paymentService struct {
	payments    repository.PaymentRepository
	obligations repository.ObligationRepository
}

// NewPaymentService returns a new instance of PaymentService
func NewPaymentService(payments repository.PaymentRepository, obligations repository.ObligationRepository) PaymentService {
	return &paymentService{payments: payments, obligations: obligations}
}

func (s *paymentService) ListForUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	return s.payments.ListForUser(ctx, userID)
}

func (s *paymentService) Get(ctx context.Context, userID, id int64) (*model.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.UserID != userID {
		return nil, ErrForbidden
	}
	return payment, nil
}

func (s *paymentService) Create(ctx context.Context, userID int64, req CreatePaymentRequest) (*model.Payment, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", req.Amount, ErrInvalidInput)
	}

	reference := req.Reference
	if reference == "" {
		reference = "PAY-" + strings.ToUpper(uuid.NewString()[:8])
	}

	payment := &model.Payment{
		UserID:       userID,
		ObligationID: req.ObligationID,
		Amount:       amount,
		Method:       req.Method,
		Status:       req.Status,
		Reference:    reference,
	}
	if req.Date != nil {
		payment.Date = *req.Date
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	// A payment against an obligation flips the obligation to "paid" in the
	// same call. The second step is best-effort: the recorded payment stands
	// even when the flip fails, so a completed payment can coexist with a
	// still-pending obligation.
	if payment.ObligationID != nil {
		s.settleObligation(ctx, userID, *payment.ObligationID)
	}

	return payment, nil
}

func (s *paymentService) settleObligation(ctx context.Context, userID, obligationID int64) {
	obligation, err := s.obligations.GetByID(ctx, obligationID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"obligation_id": obligationID}).WithError(err).
			Warn("payment references unknown obligation, skipping status flip")
		return
	}
	if obligation.UserID != userID {
		logrus.WithFields(logrus.Fields{"obligation_id": obligationID, "user_id": userID}).
			Warn("payment references another user's obligation, skipping status flip")
		return
	}

	obligation.Status = model.ObligationPaid
	if err := s.obligations.Update(ctx, obligation); err != nil {
		logrus.WithFields(logrus.Fields{"obligation_id": obligationID}).WithError(err).
			Warn("failed to mark obligation as paid")
	}
}
