package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rashigupta12/recuritment-sub001/internal/repositories"
)

type ExtractionHandler struct {
	extractionRepo repositories.ExtractionRepository
}

func NewExtractionHandler(extractionRepo repositories.ExtractionRepository) *ExtractionHandler {
	return &ExtractionHandler{
		extractionRepo: extractionRepo,
	}
}

// HandleGet handles GET /api/extractions/:id.
func (h *ExtractionHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid extraction ID format",
		})
	}

	extraction, err := h.extractionRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Extraction not found",
		})
	}

	return c.JSON(extraction)
}

// HandleList handles GET /api/extractions.
func (h *ExtractionHandler) HandleList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	extractions, err := h.extractionRepo.ListRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list extractions",
		})
	}

	return c.JSON(fiber.Map{
		"extractions": extractions,
	})
}
