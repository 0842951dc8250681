package handlers

import (
	"errors"
	"kpoller/internal/repository"
	"kpoller/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type SubscriberHandler struct {
	service services.SubscriberService
}

func NewSubscriberHandler(service services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{service: service}
}

func (h *SubscriberHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Email  string `json:"email"`
		Active *bool  `json:"active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	if req.Email == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "email is required"})
	}

	// Registrations default to active.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	subscriber, err := h.service.Register(req.Email, active)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": "email already registered"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(subscriber)
}

func (h *SubscriberHandler) ListActiveSubscribers(c *fiber.Ctx) error {
	subscribers, err := h.service.GetActiveSubscribers()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list subscribers"})
	}
	return c.JSON(subscribers)
}

func (h *SubscriberHandler) GetSubscriberByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	subscriber, err := h.service.GetSubscriberByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "subscriber not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.JSON(subscriber)
}
