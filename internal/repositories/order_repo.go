package repositories

import (
	"mountainstore/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// GetAll returns orders sorted by creation time, newest first.
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
	// No Delete: orders are never hard-deleted.
}
