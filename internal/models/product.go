package models

import "time"

// Product represents an item sold by the store.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Category    string    `json:"category"`
	Inventory   int       `json:"inventory" validate:"gte=0"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductUpdate carries a partial product update. Nil fields are skipped;
// a present zero value (0 inventory, false is_active) is still applied.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Inventory   *int     `json:"inventory"`
	ImageURL    *string  `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
}
