// handlers/devotionals.go
package handlers

import (
	"errors"
	"strconv"

	"devotional/logger"
	"devotional/store"
	"devotional/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DevotionalHandler struct {
	store *store.DevotionalStore
}

func NewDevotionalHandler(s *store.DevotionalStore) *DevotionalHandler {
	return &DevotionalHandler{store: s}
}

type CreateDevotionalRequest struct {
	Verse   string `json:"verse"`
	Content string `json:"content"`
}

// UpdateDevotionalRequest uses pointers so an absent key and an empty
// string stay distinguishable after decoding.
type UpdateDevotionalRequest struct {
	Verse   *string `json:"verse"`
	Content *string `json:"content"`
}

// List returns all active devotionals, newest first.
func (h *DevotionalHandler) List(c *fiber.Ctx) error {
	devotionals, err := h.store.ListActive()
	if err != nil {
		logger.Log.Error("failed to list devotionals", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Failed to fetch devotionals")
	}
	return c.JSON(devotionals)
}

// Get returns a single active devotional by id.
func (h *DevotionalHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid devotional id")
	}

	devotional, err := h.store.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return utils.JSONError(c, fiber.StatusNotFound, "Devotional not found")
	}
	if err != nil {
		logger.Log.Error("failed to fetch devotional", zap.Uint("id", id), zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Failed to fetch devotional")
	}
	return c.JSON(devotional)
}

// Create inserts a new devotional and echoes the stored record.
func (h *DevotionalHandler) Create(c *fiber.Ctx) error {
	var req CreateDevotionalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	devotional, err := h.store.Create(req.Verse, req.Content)
	if store.IsValidation(err) {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		logger.Log.Error("failed to create devotional", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Failed to create devotional")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Devotional created",
		"id":      devotional.ID,
		"verse":   devotional.Verse,
		"content": devotional.Content,
	})
}

// Update overwrites the supplied fields of an active devotional. The
// response echoes only what the caller sent, not the full row.
func (h *DevotionalHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid devotional id")
	}

	var req UpdateDevotionalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	err := h.store.UpdatePartial(id, store.DevotionalPatch{
		Verse:   req.Verse,
		Content: req.Content,
	})
	if store.IsValidation(err) {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}
	if errors.Is(err, store.ErrNotFound) {
		return utils.JSONError(c, fiber.StatusNotFound, "Devotional not found")
	}
	if err != nil {
		logger.Log.Error("failed to update devotional", zap.Uint("id", id), zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Failed to update devotional")
	}

	resp := fiber.Map{"message": "Devotional updated"}
	if req.Verse != nil {
		resp["verse"] = *req.Verse
	}
	if req.Content != nil {
		resp["content"] = *req.Content
	}
	return c.JSON(resp)
}

// Delete soft-deletes an active devotional. Deleting a missing or already
// deleted record answers 404 either way.
func (h *DevotionalHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid devotional id")
	}

	err := h.store.SoftDelete(id)
	if errors.Is(err, store.ErrNotFound) {
		return utils.JSONError(c, fiber.StatusNotFound, "Devotional not found")
	}
	if err != nil {
		logger.Log.Error("failed to delete devotional", zap.Uint("id", id), zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Failed to delete devotional")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseID reads the :id path parameter. A malformed id is a caller mistake
// (400), never confused with a missing record (404).
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
