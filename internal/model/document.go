package model

import (
	"time"
)

// Document represents an uploaded or issued tax document belonging to a user
type Document struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"not null;index" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"-"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Type       string    `gorm:"type:varchar(50);not null" json:"type"` // tax_return, receipt, assessment, ...
	FileURL    string    `gorm:"type:text;not null" json:"fileUrl"`
	UploadDate time.Time `gorm:"not null;index" json:"uploadDate"`
	Year       *int      `json:"year"`
}
