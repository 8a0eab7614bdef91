package service

import (
	"context"
	"testing"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreateFlipsObligationToPaid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewPaymentService(store.Payments(), store.Obligations())

	obligation := &model.TaxObligation{
		UserID:  1,
		Name:    "Income Tax",
		Amount:  decimal.NewFromInt(500),
		DueDate: time.Now().AddDate(0, 0, 10),
		Status:  model.ObligationPending,
	}
	require.NoError(t, store.Obligations().Create(ctx, obligation))

	payment, err := svc.Create(ctx, 1, CreatePaymentRequest{
		ObligationID: &obligation.ID,
		Amount:       "500",
		Method:       "bank_transfer",
		Status:       model.PaymentCompleted,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), payment.ID)
	require.NotEmpty(t, payment.Reference)

	flipped, err := store.Obligations().GetByID(ctx, obligation.ID)
	require.NoError(t, err)
	require.Equal(t, model.ObligationPaid, flipped.Status)
}

func TestPaymentService_ForeignObligationNotFlipped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewPaymentService(store.Payments(), store.Obligations())

	obligation := &model.TaxObligation{UserID: 2, Status: model.ObligationPending, DueDate: time.Now().AddDate(0, 0, 10)}
	require.NoError(t, store.Obligations().Create(ctx, obligation))

	// the payment is recorded, but another user's obligation must not change
	payment, err := svc.Create(ctx, 1, CreatePaymentRequest{
		ObligationID: &obligation.ID,
		Amount:       "100",
		Method:       "credit_card",
		Status:       model.PaymentCompleted,
	})
	require.NoError(t, err)
	require.NotZero(t, payment.ID)

	untouched, err := store.Obligations().GetByID(ctx, obligation.ID)
	require.NoError(t, err)
	require.Equal(t, model.ObligationPending, untouched.Status)
}

func TestPaymentService_UnknownObligationBestEffort(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewPaymentService(store.Payments(), store.Obligations())

	missing := int64(99)
	payment, err := svc.Create(ctx, 1, CreatePaymentRequest{
		ObligationID: &missing,
		Amount:       "100",
		Method:       "credit_card",
		Status:       model.PaymentProcessing,
	})
	require.NoError(t, err)
	require.NotZero(t, payment.ID)
}

func TestPaymentService_InvalidAmount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewPaymentService(store.Payments(), store.Obligations())

	_, err := svc.Create(ctx, 1, CreatePaymentRequest{
		Amount: "not-a-number",
		Method: "credit_card",
		Status: model.PaymentCompleted,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	list, lerr := svc.ListForUser(ctx, 1)
	require.NoError(t, lerr)
	require.Empty(t, list)
}

func TestPaymentService_GetEnforcesOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewPaymentService(store.Payments(), store.Obligations())

	payment, err := svc.Create(ctx, 1, CreatePaymentRequest{
		Amount: "50",
		Method: "credit_card",
		Status: model.PaymentCompleted,
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, 2, payment.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(ctx, 1, 999)
	require.ErrorIs(t, err, repository.ErrNotFound)

	mine, err := svc.Get(ctx, 1, payment.ID)
	require.NoError(t, err)
	require.Equal(t, payment.ID, mine.ID)
}
