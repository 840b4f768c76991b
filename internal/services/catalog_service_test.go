package services_test

import (
	"testing"

	"mountainstore/internal/models"
	"mountainstore/internal/repositories"
	"mountainstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func newCatalogService() (*services.CatalogService, *repositories.MockProductRepository, *MockCategoryRepository) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := repositories.NewMockProductRepository()
	return services.NewCatalogService(categoryRepo, productRepo), productRepo, categoryRepo
}

func TestCatalogService_Categories(t *testing.T) {
	service, _, categoryRepo := newCatalogService()

	expected := []models.Category{
		{ID: "1", Name: "Snacks"},
		{ID: "2", Name: "Drinks"},
	}
	categoryRepo.On("GetAll").Return(expected, nil).Once()

	categories, err := service.ListCategories()
	assert.NoError(t, err)
	assert.Equal(t, expected, categories)

	categoryRepo.On("Create", mock.MatchedBy(func(c *models.Category) bool {
		return c.Name == "Candy" && c.Description == "Chocolate, gum, and candy"
	})).Return(nil).Once()

	created, err := service.CreateCategory("Candy", "Chocolate, gum, and candy")
	assert.NoError(t, err)
	assert.Equal(t, "Candy", created.Name)
	categoryRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProductDefaults(t *testing.T) {
	service, _, _ := newCatalogService()

	product := &models.Product{
		Name:        "Trail Mix",
		Description: "Nuts and dried fruit",
		Price:       4.99,
		Category:    "Snacks",
		Inventory:   30,
	}
	err := service.CreateProduct(product)
	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
	// New products are always active
	assert.True(t, product.IsActive)

	// Round trip: fetching by id returns identical field values
	fetched, err := service.GetProduct(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.Name, fetched.Name)
	assert.Equal(t, product.Price, fetched.Price)
	assert.Equal(t, product.Inventory, fetched.Inventory)
	assert.True(t, fetched.IsActive)
}

func TestCatalogService_ListProductsFiltering(t *testing.T) {
	service, _, _ := newCatalogService()

	seed := []models.Product{
		{Name: "Chips", Price: 2.50, Category: "Snacks"},
		{Name: "Cola", Price: 1.75, Category: "Drinks"},
		{Name: "Old Chips", Price: 2.00, Category: "Snacks"},
	}
	for i := range seed {
		assert.NoError(t, service.CreateProduct(&seed[i]))
	}
	// Deactivate one product
	inactive := false
	_, err := service.UpdateProduct(seed[2].ID, models.ProductUpdate{IsActive: &inactive})
	assert.NoError(t, err)

	// Category filter + activeOnly is a conjunction
	snacks, err := service.ListProducts("Snacks", true)
	assert.NoError(t, err)
	assert.Len(t, snacks, 1)
	assert.Equal(t, "Chips", snacks[0].Name)

	// Without activeOnly, inactive products show up too
	allSnacks, err := service.ListProducts("Snacks", false)
	assert.NoError(t, err)
	assert.Len(t, allSnacks, 2)

	everything, err := service.ListProducts("", false)
	assert.NoError(t, err)
	assert.Len(t, everything, 3)
}

func TestCatalogService_PartialUpdate(t *testing.T) {
	service, _, _ := newCatalogService()

	product := &models.Product{
		Name:        "Spring Water",
		Description: "500ml bottle",
		Price:       1.25,
		Category:    "Drinks",
		Inventory:   100,
	}
	assert.NoError(t, service.CreateProduct(product))

	// An explicit zero value still applies
	zero := 0
	updated, err := service.UpdateProduct(product.ID, models.ProductUpdate{Inventory: &zero})
	assert.NoError(t, err)
	assert.Equal(t, 0, updated.Inventory)
	assert.Equal(t, "Spring Water", updated.Name)
	assert.Equal(t, 1.25, updated.Price)

	// An empty partial payload leaves all fields unchanged
	unchanged, err := service.UpdateProduct(product.ID, models.ProductUpdate{})
	assert.NoError(t, err)
	assert.Equal(t, *updated, *unchanged)

	// Unknown product
	_, err = service.UpdateProduct("missing-id", models.ProductUpdate{})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	service, _, _ := newCatalogService()

	product := &models.Product{Name: "Gum", Price: 0.99, Category: "Candy"}
	assert.NoError(t, service.CreateProduct(product))

	assert.NoError(t, service.DeleteProduct(product.ID))

	// Hard delete: the product is gone
	_, err := service.GetProduct(product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = service.DeleteProduct(product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
