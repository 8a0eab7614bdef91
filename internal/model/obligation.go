package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObligationStatus enum constants
const (
	ObligationPending = "pending"
	ObligationPaid    = "paid"
	ObligationOverdue = "overdue"
)

// TaxObligation represents a tax liability owed by a user, with an amount and due date.
// Status flips pending -> paid when a payment referencing the obligation is recorded.
type TaxObligation struct {
	ID       int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   int64           `gorm:"not null;index" json:"userId"`
	User     *User           `gorm:"foreignKey:UserID" json:"-"`
	Name     string          `gorm:"type:varchar(255);not null" json:"name"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	DueDate  time.Time       `gorm:"not null;index" json:"dueDate"`
	Status   string          `gorm:"type:varchar(20);not null;index" json:"status"` // pending, paid, overdue
	Category string          `gorm:"type:varchar(50);not null" json:"category"`     // income, property, vehicle, ...
}
