package services

import (
	"fmt"
	"strings"

	"mountainstore/internal/models"
	"mountainstore/internal/repositories"
)

// DeliveryService resolves customer addresses to delivery zones.
type DeliveryService struct {
	addressRepo repositories.DeliveryAddressRepository
}

// NewDeliveryService creates a new DeliveryService.
func NewDeliveryService(addressRepo repositories.DeliveryAddressRepository) *DeliveryService {
	return &DeliveryService{
		addressRepo: addressRepo,
	}
}

// DeliveryCheck is the availability verdict for a customer address.
type DeliveryCheck struct {
	Available   bool    `json:"available"`
	DeliveryFee float64 `json:"delivery_fee"`
	Zone        string  `json:"zone"`
	Message     string  `json:"message"`
}

// FindZoneForAddress returns the zone record whose stored address pattern is
// a case-insensitive substring of the supplied address. Only active records
// are considered; the first match in insertion order wins. Returns nil when
// no zone matches.
func (s *DeliveryService) FindZoneForAddress(address string) (*models.DeliveryAddress, error) {
	zones, err := s.addressRepo.GetActive()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(address)
	for i := range zones {
		if strings.Contains(needle, strings.ToLower(zones[i].Address)) {
			return &zones[i], nil
		}
	}
	return nil, nil
}

// CheckAvailability wraps FindZoneForAddress in a customer-facing verdict.
func (s *DeliveryService) CheckAvailability(address string) (*DeliveryCheck, error) {
	zone, err := s.FindZoneForAddress(address)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return &DeliveryCheck{
			Available:   false,
			DeliveryFee: 0,
			Message:     "Sorry, we don't deliver to this address yet.",
		}, nil
	}
	return &DeliveryCheck{
		Available:   true,
		DeliveryFee: zone.DeliveryFee,
		Zone:        zone.Zone,
		Message:     fmt.Sprintf("Great! We deliver to %s. Delivery fee: $%.2f", zone.Zone, zone.DeliveryFee),
	}, nil
}

// ListAddresses retrieves all zone records, active or not.
func (s *DeliveryService) ListAddresses() ([]models.DeliveryAddress, error) {
	return s.addressRepo.GetAll()
}

// CreateAddress creates a new zone record.
func (s *DeliveryService) CreateAddress(address, zone string, fee float64, isActive bool) (*models.DeliveryAddress, error) {
	record := &models.DeliveryAddress{
		Address:     address,
		Zone:        zone,
		DeliveryFee: fee,
		IsActive:    isActive,
	}
	if err := s.addressRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}
