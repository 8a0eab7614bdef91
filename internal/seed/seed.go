package seed

import (
	"context"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Demo populates the store with one demo taxpayer and a plausible tax
// position, so the portal is usable right after start. Only invoked when
// SEED_DEMO=true; skipped when the demo user already exists.
func Demo(ctx context.Context, users repository.UserRepository, obligations repository.ObligationRepository, notifications repository.NotificationRepository, documents repository.DocumentRepository) error {
	if _, err := users.GetByUsername(ctx, "demo"); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:  "demo",
		Password:  string(hash),
		Email:     "demo@example.com",
		FirstName: "Astan",
		LastName:  "Agrba",
		TaxID:     "AB-1234567",
		Phone:     "+7 840 000 00 00",
		Address:   "12 Leon Ave, Sukhum",
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}

	now := time.Now()
	for _, obligation := range []*model.TaxObligation{
		{UserID: user.ID, Name: "Income Tax 2025", Amount: decimal.NewFromInt(500), DueDate: now.AddDate(0, 0, 10), Status: model.ObligationPending, Category: "income"},
		{UserID: user.ID, Name: "Property Tax", Amount: decimal.NewFromInt(320), DueDate: now.AddDate(0, 1, 10), Status: model.ObligationPending, Category: "property"},
		{UserID: user.ID, Name: "Vehicle Tax", Amount: decimal.NewFromInt(85), DueDate: now.AddDate(0, -1, 0), Status: model.ObligationOverdue, Category: "vehicle"},
	} {
		if err := obligations.Create(ctx, obligation); err != nil {
			return err
		}
	}

	if err := notifications.Create(ctx, &model.Notification{
		UserID:  user.ID,
		Title:   "Income tax due soon",
		Message: "Your income tax payment is due in 10 days.",
		Type:    model.NotificationDeadline,
		Date:    now,
	}); err != nil {
		return err
	}

	year := now.Year() - 1
	if err := documents.Create(ctx, &model.Document{
		UserID:     user.ID,
		Title:      "Tax Return",
		Type:       "tax_return",
		FileURL:    "/files/demo/tax-return.pdf",
		UploadDate: now.AddDate(0, -2, 0),
		Year:       &year,
	}); err != nil {
		return err
	}

	logrus.Info("seeded demo taxpayer account (demo/demo1234)")
	return nil
}
