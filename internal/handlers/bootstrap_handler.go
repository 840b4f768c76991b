package handlers

import (
	"log"

	"mountainstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BootstrapHandler exposes the idempotent default-data seed endpoint.
type BootstrapHandler struct {
	service *services.BootstrapService
}

// NewBootstrapHandler creates a new BootstrapHandler.
func NewBootstrapHandler(service *services.BootstrapService) *BootstrapHandler {
	return &BootstrapHandler{
		service: service,
	}
}

// RegisterRoutes registers the init-data route.
func (h *BootstrapHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/init-data", h.HandleInitData)
}

// HandleInitData seeds default categories, delivery zones and the default
// admin. Safe to call repeatedly.
func (h *BootstrapHandler) HandleInitData(c *fiber.Ctx) error {
	if err := h.service.InitDefaultData(); err != nil {
		log.Printf("Error initializing default data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not initialize default data",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Default data initialized",
	})
}
