package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, cancellable by the user
	OrderStatusCompleted OrderStatus = "completed" // fulfilled
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before fulfilment
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID          uint        `gorm:"index" json:"user_id"`
	Username        string      `gorm:"index" json:"username"` // kept even if the account is deleted
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	DeliveryAddress string      `json:"delivery_address"`
	PaymentMethod   string      `json:"payment_method"`
	CreatedAt       time.Time   `json:"timestamp"`
}

// OrderItem is an immutable snapshot; it deliberately keeps no foreign key
// into products, so deleting a product leaves order history intact.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"name"`
	ProductImage string  `json:"image_url"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}
