package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus enum constants
const (
	PaymentProcessing = "processing"
	PaymentCompleted  = "completed"
	PaymentFailed     = "failed"
)

// Payment represents a settlement submitted by a user, optionally against one obligation.
// Payments are immutable once recorded.
type Payment struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64           `gorm:"not null;index" json:"userId"`
	User         *User           `gorm:"foreignKey:UserID" json:"-"`
	ObligationID *int64          `gorm:"index" json:"obligationId"`
	Obligation   *TaxObligation  `gorm:"foreignKey:ObligationID" json:"-"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	Method       string          `gorm:"type:varchar(50);not null" json:"method"`       // credit_card, bank_transfer, ...
	Status       string          `gorm:"type:varchar(20);not null" json:"status"`       // processing, completed, failed
	Reference    string          `gorm:"type:varchar(64);not null" json:"reference"`
}
