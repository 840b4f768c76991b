package services

import (
	"mountainstore/internal/models"
	"mountainstore/internal/repositories"
)

// CatalogService handles business logic for categories and products.
type CatalogService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// ListCategories retrieves all categories.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// CreateCategory creates a new category. Names are not required to be unique.
func (s *CatalogService) CreateCategory(name, description string) (*models.Category, error) {
	category := &models.Category{
		Name:        name,
		Description: description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListProducts retrieves products filtered by category (when non-empty) and,
// when activeOnly is set, by is_active.
func (s *CatalogService) ListProducts(category string, activeOnly bool) ([]models.Product, error) {
	return s.productRepo.GetAll(category, activeOnly)
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct creates a new product. New products are always active.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	product.IsActive = true
	return s.productRepo.Create(product)
}

// UpdateProduct applies a partial update to a product. Only non-nil fields
// of the update are merged; explicit zero values still apply.
func (s *CatalogService) UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Inventory != nil {
		product.Inventory = *update.Inventory
	}
	if update.ImageURL != nil {
		product.ImageURL = *update.ImageURL
	}
	if update.IsActive != nil {
		product.IsActive = *update.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product by its ID. Hard delete.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}
