package repositories

import (
	"fmt"
	"time"

	"mountainstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMDeliveryAddressRepository is a GORM implementation of DeliveryAddressRepository.
type GORMDeliveryAddressRepository struct {
	db *gorm.DB
}

// NewGORMDeliveryAddressRepository creates a new instance of GORMDeliveryAddressRepository.
func NewGORMDeliveryAddressRepository(db *gorm.DB) *GORMDeliveryAddressRepository {
	return &GORMDeliveryAddressRepository{
		db: db,
	}
}

// GetAll retrieves all delivery zone records.
func (r *GORMDeliveryAddressRepository) GetAll() ([]models.DeliveryAddress, error) {
	var addresses []models.DeliveryAddress
	if err := r.db.Order("created_at ASC").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get delivery addresses: %w", err)
	}
	return addresses, nil
}

// GetActive retrieves active zone records in insertion order.
func (r *GORMDeliveryAddressRepository) GetActive() ([]models.DeliveryAddress, error) {
	var addresses []models.DeliveryAddress
	if err := r.db.Where("is_active = ?", true).Order("created_at ASC").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get active delivery addresses: %w", err)
	}
	return addresses, nil
}

// Create creates a new delivery zone record.
func (r *GORMDeliveryAddressRepository) Create(address *models.DeliveryAddress) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if address.CreatedAt.IsZero() {
		address.CreatedAt = time.Now().UTC()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create delivery address: %w", err)
	}
	return nil
}
