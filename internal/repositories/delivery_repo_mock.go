package repositories

import (
	"sync"
	"time"

	"mountainstore/internal/models"

	"github.com/google/uuid"
)

// MockDeliveryAddressRepository is an in-memory implementation of
// DeliveryAddressRepository. Records are kept in insertion order.
type MockDeliveryAddressRepository struct {
	addresses []models.DeliveryAddress
	mu        sync.RWMutex
}

// NewMockDeliveryAddressRepository creates a new instance of MockDeliveryAddressRepository.
func NewMockDeliveryAddressRepository() *MockDeliveryAddressRepository {
	return &MockDeliveryAddressRepository{}
}

// GetAll returns all zone records in insertion order.
func (r *MockDeliveryAddressRepository) GetAll() ([]models.DeliveryAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.DeliveryAddress, len(r.addresses))
	copy(out, r.addresses)
	return out, nil
}

// GetActive returns active zone records in insertion order.
func (r *MockDeliveryAddressRepository) GetActive() ([]models.DeliveryAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.DeliveryAddress
	for _, a := range r.addresses {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

// Create appends a new zone record.
func (r *MockDeliveryAddressRepository) Create(address *models.DeliveryAddress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if address.CreatedAt.IsZero() {
		address.CreatedAt = time.Now().UTC()
	}
	r.addresses = append(r.addresses, *address)
	return nil
}
