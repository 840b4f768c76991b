package repositories

import (
	"mountainstore/internal/models"
)

// CategoryRepository defines the interface for category data access.
// Categories are append-only; there is no delete.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(category *models.Category) error
}
