package repositories

import (
	"mountainstore/internal/models"
)

// DeliveryAddressRepository defines the interface for delivery zone data access.
type DeliveryAddressRepository interface {
	GetAll() ([]models.DeliveryAddress, error)
	// GetActive returns active zone records in insertion order, which is the
	// documented tiebreak when several patterns match one address.
	GetActive() ([]models.DeliveryAddress, error)
	Create(address *models.DeliveryAddress) error
}
