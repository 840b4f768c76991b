package models

import "time"

// OrderStatus represents the state of an order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CustomerInfo is the contact and delivery information embedded in an order.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

// OrderItem is a single line item. Name, price and subtotal are snapshots
// taken at order time; they are not re-validated against the catalog.
type OrderItem struct {
	ProductID    string  `json:"product_id" validate:"required"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	Subtotal     float64 `json:"subtotal" validate:"gte=0"`
}

// Order represents a customer order. TotalAmount is computed once at
// creation; only Status and Notes are mutable afterwards.
type Order struct {
	ID           string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerInfo CustomerInfo `json:"customer_info" gorm:"serializer:json"`
	Items        []OrderItem  `json:"items" gorm:"serializer:json"`
	TotalAmount  float64      `json:"total_amount"`
	DeliveryFee  float64      `json:"delivery_fee"`
	Status       OrderStatus  `json:"status" gorm:"type:varchar(20)"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
