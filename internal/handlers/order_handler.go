package handlers

import (
	"errors"
	"log"

	"mountainstore/internal/models"
	"mountainstore/internal/repositories"
	"mountainstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes. Order placement and lookup by
// ID are public; listing and updates are admin-only.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", adminOnly, h.HandleListOrders)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Put("/:id", adminOnly, h.HandleUpdateOrder)
}

// CreateOrderRequest represents the request body for placing an order.
type CreateOrderRequest struct {
	CustomerInfo models.CustomerInfo `json:"customer_info" validate:"required"`
	Items        []models.OrderItem  `json:"items" validate:"required,min=1,dive"`
	Notes        string              `json:"notes"`
}

// HandleCreateOrder prices and persists a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrors(err),
		})
	}

	order, err := h.service.CreateOrder(req.CustomerInfo, req.Items, req.Notes)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListOrders returns all orders, newest first.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders()
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrder returns a single order by ID. Public: anyone holding the
// order ID sees the full order.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	order, err := h.service.GetOrder(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error getting order %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// UpdateOrderRequest represents the request body for updating an order.
// Nil fields are skipped.
type UpdateOrderRequest struct {
	Status *models.OrderStatus `json:"status"`
	Notes  *string             `json:"notes"`
}

// HandleUpdateOrder updates the status and/or notes of an order.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.UpdateOrder(id, req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error updating order %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}
