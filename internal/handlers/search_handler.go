package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/rashigupta12/recuritment-sub001/internal/models"
	"github.com/rashigupta12/recuritment-sub001/internal/services"
)

type SearchHandler struct {
	llm   services.LLMService
	index services.ResumeIndex
}

func NewSearchHandler(llm services.LLMService, index services.ResumeIndex) *SearchHandler {
	return &SearchHandler{
		llm:   llm,
		index: index,
	}
}

// HandleSearch handles POST /api/resumes/search: find previously indexed
// resumes similar to the given text.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}
	if req.Limit < 1 || req.Limit > 50 {
		req.Limit = 10
	}

	embedding, err := h.llm.GenerateEmbedding(c.Context(), req.Text)
	if err != nil {
		log.Printf("❌ Failed to embed search query: %v\n", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "AI service unavailable or returned invalid data.",
		})
	}

	matches, err := h.index.SearchSimilar(c.Context(), embedding, req.Limit)
	if err != nil {
		log.Printf("❌ Resume search failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search resumes",
		})
	}

	results := make([]models.SearchMatch, 0, len(matches))
	for _, m := range matches {
		results = append(results, models.SearchMatch{
			ExtractionID:  m.ExtractionID,
			Score:         m.Score,
			ApplicantName: m.ApplicantName,
			JobTitle:      m.JobTitle,
		})
	}

	return c.JSON(models.SearchResponse{
		Success: true,
		Results: results,
	})
}
