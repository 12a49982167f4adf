package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Username        string     `gorm:"uniqueIndex;not null" json:"username"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string     `gorm:"not null" json:"-"`
	Role            string     `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	DeliveryAddress string     `json:"delivery_address"`
	LastLogin       *time.Time `json:"last_login"`
	CreatedAt       time.Time  `json:"registration_date"`

	Cart           Cart            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	PaymentMethods []PaymentMethod `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"payment_methods,omitempty"`
}
