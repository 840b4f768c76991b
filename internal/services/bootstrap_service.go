package services

import (
	"fmt"
	"log"

	"mountainstore/internal/models"
	"mountainstore/internal/repositories"
)

// BootstrapService seeds baseline records: default categories, delivery
// zones and the default admin account.
type BootstrapService struct {
	categoryRepo repositories.CategoryRepository
	addressRepo  repositories.DeliveryAddressRepository
	authService  *AuthService
}

// NewBootstrapService creates a new BootstrapService.
func NewBootstrapService(categoryRepo repositories.CategoryRepository, addressRepo repositories.DeliveryAddressRepository, authService *AuthService) *BootstrapService {
	return &BootstrapService{
		categoryRepo: categoryRepo,
		addressRepo:  addressRepo,
		authService:  authService,
	}
}

// InitDefaultData seeds default categories and delivery zones when their
// collections are empty, then ensures the default admin exists. Idempotent.
func (s *BootstrapService) InitDefaultData() error {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to check categories: %w", err)
	}
	if len(categories) == 0 {
		defaults := []models.Category{
			{Name: "Snacks", Description: "Chips, crackers, and other snacks"},
			{Name: "Drinks", Description: "Sodas, water, energy drinks"},
			{Name: "Candy", Description: "Chocolate, gum, and candy"},
			{Name: "Household", Description: "Basic household items"},
		}
		for i := range defaults {
			if err := s.categoryRepo.Create(&defaults[i]); err != nil {
				return fmt.Errorf("failed to seed category %s: %w", defaults[i].Name, err)
			}
		}
		log.Printf("Seeded %d default categories", len(defaults))
	}

	addresses, err := s.addressRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to check delivery addresses: %w", err)
	}
	if len(addresses) == 0 {
		zones := []models.DeliveryAddress{
			{Address: "Mountain View", Zone: "Downtown", DeliveryFee: 2.99, IsActive: true},
			{Address: "Castro Street", Zone: "Downtown", DeliveryFee: 2.99, IsActive: true},
			{Address: "Shoreline", Zone: "North Side", DeliveryFee: 4.99, IsActive: true},
		}
		for i := range zones {
			if err := s.addressRepo.Create(&zones[i]); err != nil {
				return fmt.Errorf("failed to seed delivery zone %s: %w", zones[i].Zone, err)
			}
		}
		log.Printf("Seeded %d default delivery zones", len(zones))
	}

	return s.authService.BootstrapDefaultAdmin()
}
