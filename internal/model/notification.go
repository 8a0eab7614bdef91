package model

import (
	"time"
)

// NotificationType enum constants
const (
	NotificationDeadline   = "deadline"
	NotificationPayment    = "payment"
	NotificationAssessment = "assessment"
)

// Notification represents a message delivered to a user. Only the read flag ever mutates.
type Notification struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  int64     `gorm:"not null;index" json:"userId"`
	User    *User     `gorm:"foreignKey:UserID" json:"-"`
	Title   string    `gorm:"type:varchar(255);not null" json:"title"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Type    string    `gorm:"type:varchar(50);not null" json:"type"` // deadline, payment, assessment, ...
	Date    time.Time `gorm:"not null;index" json:"date"`
	Read    bool      `gorm:"not null;default:false" json:"read"`
}
