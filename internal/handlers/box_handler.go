package handlers

import (
	"errors"
	"kpoller/internal/repository"
	"kpoller/internal/services"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service services.BoxService
}

func NewBoxHandler(service services.BoxService) *BoxHandler {
	return &BoxHandler{service: service}
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	boxes, err := h.service.GetBoxes()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list boxes"})
	}
	return c.JSON(boxes)
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	box, err := h.service.GetBoxByID(uint(id))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if box == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
	}

	return c.JSON(box)
}

// GetBox resolves a box by its natural key, e.g. /boxes/find?name=X&month=Y.
func (h *BoxHandler) GetBox(c *fiber.Ctx) error {
	name := c.Query("name")
	month := c.Query("month")
	if name == "" || month == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name and month are required"})
	}

	box, err := h.service.GetBox(name, month)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	if err := h.service.DeleteBox(uint(id)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete box"})
	}

	return c.SendStatus(http.StatusNoContent)
}
