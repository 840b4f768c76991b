package models

import "time"

// DeliveryAddress is a lookup record for a delivery zone. Address holds a
// free-text pattern matched case-insensitively as a substring of the
// customer-supplied address.
type DeliveryAddress struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Address     string    `json:"address" validate:"required"`
	Zone        string    `json:"zone" validate:"required"`
	DeliveryFee float64   `json:"delivery_fee" validate:"gte=0"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
