package services

import (
	"encoding/json"
	"fmt"
	"log"

	"mountainstore/internal/models"
	"mountainstore/internal/repositories"
	"mountainstore/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo       repositories.OrderRepository
	deliveryService *DeliveryService
	mqClient        *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publishing is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, deliveryService *DeliveryService, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		deliveryService: deliveryService,
		mqClient:        mqClient,
	}
}

// CreateOrder prices and persists a new order:
//
//  1. The delivery fee comes from the zone matching the customer address;
//     no match means free delivery (fee 0), not a rejection.
//  2. The total is the sum of the supplied item subtotals plus the fee.
//     Subtotals are taken as sent by the client and not recomputed from the
//     catalog; pricing is trusted at this boundary.
//  3. The order starts in the pending status.
//
// The fee lookup and the insert are two separate store operations with no
// transaction between them.
func (s *OrderService) CreateOrder(customer models.CustomerInfo, items []models.OrderItem, notes string) (*models.Order, error) {
	zone, err := s.deliveryService.FindZoneForAddress(customer.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve delivery zone: %w", err)
	}

	var deliveryFee float64
	if zone != nil {
		deliveryFee = zone.DeliveryFee
	}

	total := deliveryFee
	for _, item := range items {
		total += item.Subtotal
	}

	order := &models.Order{
		CustomerInfo: customer,
		Items:        items,
		TotalAmount:  total,
		DeliveryFee:  deliveryFee,
		Status:       models.StatusPending,
		Notes:        notes,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})

	return order, nil
}

// ListOrders retrieves all orders, newest first.
func (s *OrderService) ListOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrder retrieves a single order by its ID.
func (s *OrderService) GetOrder(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrder applies a partial update to an order. Only status and notes
// are mutable; nil fields are skipped. A status must be one of the known
// values, but any known value may replace any other; the forward lifecycle
// is not enforced.
func (s *OrderService) UpdateOrder(id string, status *models.OrderStatus, notes *string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if status != nil {
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
		}
		statusChanged = order.Status != *status
		order.Status = *status
	}
	if notes != nil {
		order.Notes = *notes
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if statusChanged {
		s.publishEvent("order.status_updated", map[string]interface{}{
			"order_id": order.ID,
			"status":   order.Status,
		})
	}

	return order, nil
}

// publishEvent sends an order lifecycle event, fire-and-forget. Publish
// failures are logged, never surfaced to the request.
func (s *OrderService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
