package services_test

import (
	"testing"
	"time"

	"mountainstore/internal/models"
	"mountainstore/internal/repositories"
	"mountainstore/internal/services"

	"github.com/stretchr/testify/assert"
)

func newOrderService(zones ...models.DeliveryAddress) (*services.OrderService, *repositories.MockOrderRepository) {
	orderRepo := repositories.NewMockOrderRepository()
	addressRepo := repositories.NewMockDeliveryAddressRepository()
	for i := range zones {
		_ = addressRepo.Create(&zones[i])
	}
	deliveryService := services.NewDeliveryService(addressRepo)
	// nil MQ client: event publishing is skipped
	return services.NewOrderService(orderRepo, deliveryService, nil), orderRepo
}

var testCustomer = models.CustomerInfo{
	Name:    "Jamie Rivera",
	Phone:   "555-0101",
	Address: "742 Mountain View Avenue",
	Email:   "jamie@example.com",
}

func TestOrderService_CreateOrderTotal(t *testing.T) {
	service, _ := newOrderService(
		models.DeliveryAddress{Address: "Mountain View", Zone: "Downtown", DeliveryFee: 2.99, IsActive: true},
	)

	items := []models.OrderItem{
		{ProductID: "p1", ProductName: "Trail Mix", ProductPrice: 5.00, Quantity: 2, Subtotal: 10.00},
		{ProductID: "p2", ProductName: "Cola", ProductPrice: 2.75, Quantity: 2, Subtotal: 5.50},
	}

	order, err := service.CreateOrder(testCustomer, items, "ring the bell")
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 2.99, order.DeliveryFee)
	assert.InDelta(t, 18.49, order.TotalAmount, 0.0001)
	assert.Equal(t, "ring the bell", order.Notes)
	assert.Len(t, order.Items, 2)
}

func TestOrderService_CreateOrderNoZoneMeansFreeDelivery(t *testing.T) {
	service, _ := newOrderService() // no zones configured

	items := []models.OrderItem{
		{ProductID: "p1", Quantity: 1, Subtotal: 7.25},
	}
	order, err := service.CreateOrder(testCustomer, items, "")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, order.DeliveryFee)
	assert.InDelta(t, 7.25, order.TotalAmount, 0.0001)
}

func TestOrderService_SubtotalsAreTrusted(t *testing.T) {
	service, _ := newOrderService()

	// The declared subtotal disagrees with price x quantity; the server
	// does not recompute it.
	items := []models.OrderItem{
		{ProductID: "p1", ProductPrice: 100.00, Quantity: 2, Subtotal: 1.00},
	}
	order, err := service.CreateOrder(testCustomer, items, "")
	assert.NoError(t, err)
	assert.InDelta(t, 1.00, order.TotalAmount, 0.0001)
}

func TestOrderService_ListOrdersNewestFirst(t *testing.T) {
	service, orderRepo := newOrderService()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"o-1", "o-2", "o-3"} {
		err := orderRepo.Create(&models.Order{
			ID:        id,
			Status:    models.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		assert.NoError(t, err)
	}

	orders, err := service.ListOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, "o-3", orders[0].ID)
	assert.Equal(t, "o-2", orders[1].ID)
	assert.Equal(t, "o-1", orders[2].ID)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	service, _ := newOrderService()

	order, err := service.CreateOrder(testCustomer, []models.OrderItem{
		{ProductID: "p1", Quantity: 1, Subtotal: 3.00},
	}, "")
	assert.NoError(t, err)

	// Status update
	delivered := models.StatusDelivered
	updated, err := service.UpdateOrder(order.ID, &delivered, nil)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, updated.Status)

	// Backwards transitions are accepted: the lifecycle is not enforced
	pending := models.StatusPending
	updated, err = service.UpdateOrder(order.ID, &pending, nil)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)

	// Notes-only update leaves the status alone
	notes := "leave at the door"
	updated, err = service.UpdateOrder(order.ID, nil, &notes)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Equal(t, "leave at the door", updated.Notes)

	// Totals are never recomputed on update
	assert.InDelta(t, 3.00, updated.TotalAmount, 0.0001)

	// Unknown status value is rejected
	bogus := models.OrderStatus("shipped")
	_, err = service.UpdateOrder(order.ID, &bogus, nil)
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	// Unknown order
	_, err = service.UpdateOrder("missing-id", &delivered, nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestOrderService_GetOrder(t *testing.T) {
	service, _ := newOrderService()

	order, err := service.CreateOrder(testCustomer, []models.OrderItem{
		{ProductID: "p1", Quantity: 1, Subtotal: 2.50},
	}, "")
	assert.NoError(t, err)

	fetched, err := service.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, testCustomer, fetched.CustomerInfo)

	_, err = service.GetOrder("missing-id")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
