package models

import (
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;not null" json:"user"`
	Type      string    `json:"type"` // e.g. "order", "report"
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"timestamp"`
}

// AddNotification appends a notification for a user. Safe to call inside a
// transaction by passing the tx handle.
func AddNotification(db *gorm.DB, username, ntype, title, message string) error {
	n := Notification{
		Username: username,
		Type:     ntype,
		Title:    title,
		Message:  message,
	}
	return db.Create(&n).Error
}
