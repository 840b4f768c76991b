package handlers

import (
	"log"

	"mountainstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DeliveryHandler handles HTTP requests for delivery zones.
type DeliveryHandler struct {
	service  *services.DeliveryService
	validate *validator.Validate
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(service *services.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the delivery routes. Zone management is
// admin-only; the availability check is public.
func (h *DeliveryHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	router.Get("/delivery-addresses", adminOnly, h.HandleListAddresses)
	router.Post("/delivery-addresses", adminOnly, h.HandleCreateAddress)
	router.Post("/check-delivery", h.HandleCheckDelivery)
}

// HandleListAddresses returns all delivery zone records.
func (h *DeliveryHandler) HandleListAddresses(c *fiber.Ctx) error {
	addresses, err := h.service.ListAddresses()
	if err != nil {
		log.Printf("Error listing delivery addresses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve delivery addresses",
			"error":   err.Error(),
		})
	}
	return c.JSON(addresses)
}

// AddressCreateRequest represents the request body for creating a zone record.
type AddressCreateRequest struct {
	Address     string  `json:"address" validate:"required"`
	Zone        string  `json:"zone" validate:"required"`
	DeliveryFee float64 `json:"delivery_fee" validate:"gte=0"`
	IsActive    *bool   `json:"is_active"`
}

// HandleCreateAddress creates a new zone record. New records default to active.
func (h *DeliveryHandler) HandleCreateAddress(c *fiber.Ctx) error {
	var req AddressCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing delivery address body: %v", err)
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

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	address, err := h.service.CreateAddress(req.Address, req.Zone, req.DeliveryFee, isActive)
	if err != nil {
		log.Printf("Error creating delivery address: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create delivery address",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// CheckDeliveryRequest represents the request body for an availability check.
type CheckDeliveryRequest struct {
	Address string `json:"address" validate:"required"`
}

// HandleCheckDelivery answers whether the store delivers to an address.
func (h *DeliveryHandler) HandleCheckDelivery(c *fiber.Ctx) error {
	var req CheckDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing check-delivery body: %v", err)
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

	check, err := h.service.CheckAvailability(req.Address)
	if err != nil {
		log.Printf("Error checking delivery for address: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not check delivery availability",
			"error":   err.Error(),
		})
	}
	return c.JSON(check)
}
