package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// InquiryStatus enum constants
const (
	InquiryOpen       = "open"
	InquiryInProgress = "in_progress"
	InquiryResolved   = "resolved"
)

// StringList is a JSON-encoded string slice column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
	return json.Unmarshal(raw, l)
}

// Inquiry represents a free-form support request raised by a user,
// tracked through the open -> in_progress -> resolved lifecycle.
type Inquiry struct {
	ID               int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           int64      `gorm:"not null;index" json:"userId"`
	User             *User      `gorm:"foreignKey:UserID" json:"-"`
	Subject          string     `gorm:"type:varchar(255);not null" json:"subject"`
	Message          string     `gorm:"type:text;not null" json:"message"`
	Status           string     `gorm:"type:varchar(20);not null;index" json:"status"` // open, in_progress, resolved
	Date             time.Time  `gorm:"not null;index" json:"date"`
	SupportDocuments StringList `gorm:"type:jsonb" json:"supportDocuments"`
}
