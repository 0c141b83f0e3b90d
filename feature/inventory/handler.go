package inventory

import (
	apperrors "team-inventory/core/errors"
	"team-inventory/core/logger"
	"team-inventory/core/middleware/team"
	"team-inventory/core/responses"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes behind guard.
func (h *Handler) RegisterRoutes(app fiber.Router, guard fiber.Handler) {
	group := app.Group("/inventory", guard)
	group.Get("/", h.HandleList)
	group.Put("/", h.HandleSave)
	group.Patch("/:partNumber/stock", h.HandleUpdateStock)
	group.Delete("/:partNumber", h.HandleDelete)
}

// HandleList returns the current team's inventory.
// @Summary List Inventory
// @Description List every part of the current team ordered by part number.
// @Tags inventory
// @Produce json
// @Success 200 {array} models.Part "Parts"
// @Failure 401 {object} map[string]interface{} "No team selected"
// @Router /inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	teamID, _ := team.ID(c)
	parts, err := h.service.List(c.UserContext(), teamID)
	if err != nil {
		return responses.Error(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(parts)
}

// HandleSave creates or replaces a part.
// @Summary Save Part
// @Description Create a part, or replace the part with the same part number.
// @Tags inventory
// @Accept json
// @Produce json
// @Param part body SavePartRequest true "Part"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Router /inventory [put]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	var req SavePartRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, l, apperrors.Wrap(apperrors.CodeValidation, err, "invalid request body"))
	}

	teamID, _ := team.ID(c)
	part, err := h.service.Save(c.UserContext(), teamID, req)
	if err != nil {
		return responses.Error(c, l, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Inventory updated", "part": part})
}

// HandleUpdateStock sets the stock of one part.
// @Summary Update Stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param partNumber path string true "Part number"
// @Param body body UpdateStockRequest true "New stock"
// @Success 200 {object} map[string]interface{} "Stock updated"
// @Failure 404 {object} map[string]interface{} "Part not found"
// @Router /inventory/{partNumber}/stock [patch]
func (h *Handler) HandleUpdateStock(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	var req UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, l, apperrors.Wrap(apperrors.CodeValidation, err, "invalid request body"))
	}

	teamID, _ := team.ID(c)
	if err := h.service.UpdateStock(c.UserContext(), teamID, c.Params("partNumber"), req); err != nil {
		return responses.Error(c, l, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Stock updated"})
}

// HandleDelete removes a part.
// @Summary Delete Part
// @Tags inventory
// @Produce json
// @Param partNumber path string true "Part number"
// @Success 200 {object} map[string]interface{} "Part deleted"
// @Failure 404 {object} map[string]interface{} "Part not found"
// @Router /inventory/{partNumber} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	teamID, _ := team.ID(c)
	if err := h.service.Delete(c.UserContext(), teamID, c.Params("partNumber")); err != nil {
		return responses.Error(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Part deleted"})
}
