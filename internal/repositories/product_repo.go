package repositories

import (
	"mountainstore/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns products matching the conjunction of both filters:
	// category equality when category is non-empty, and is_active==true
	// when activeOnly is set.
	GetAll(category string, activeOnly bool) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
