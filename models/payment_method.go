package models

import "time"

// PaymentMethod stores only the label and last four digits of a card; the
// full number is never persisted.
type PaymentMethod struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	Label       string    `json:"label"`
	Holder      string    `json:"holder"`
	CardLast4   string    `json:"card_last4"`
	ExpiryMonth int       `json:"expiry_month"`
	ExpiryYear  int       `json:"expiry_year"`
	CreatedAt   time.Time `json:"created_at"`
}
