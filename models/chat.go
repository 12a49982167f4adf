package models

import "time"

const (
	ChatSenderUser  = "user"
	ChatSenderAdmin = "admin"
)

// ChatMessage is an append-only per-user log; messages are never edited,
// only purged by the admin junk cleaner.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;not null" json:"username"`
	Sender    string    `gorm:"type:VARCHAR(10);not null" json:"from"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"image_url,omitempty"`
	OrderID   *uint     `gorm:"index" json:"order_id,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}
