package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rashigupta12/recuritment-sub001/internal/models"
	"github.com/rashigupta12/recuritment-sub001/internal/repositories"
	"github.com/rashigupta12/recuritment-sub001/internal/services"
)

type DescriptionHandler struct {
	pipeline       *services.Pipeline
	extractionRepo repositories.ExtractionRepository
	storageService services.StorageService
	maxFileSize    int64
	production     bool
}

func NewDescriptionHandler(
	pipeline *services.Pipeline,
	extractionRepo repositories.ExtractionRepository,
	storageService services.StorageService,
	maxFileSize int64,
	production bool,
) *DescriptionHandler {
	return &DescriptionHandler{
		pipeline:       pipeline,
		extractionRepo: extractionRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		production:     production,
	}
}

// HandleSummarize handles POST /api/jobdescription: bullet-point
// summarization of an uploaded job description.
func (h *DescriptionHandler) HandleSummarize(c *fiber.Ctx) error {
	input, err := readUpload(c, h.maxFileSize)
	if err != nil {
		return writeError(c, err, h.production)
	}

	recordID := h.recordRun(input)
	start := time.Now()

	outcome, err := h.pipeline.Run(c.Context(), services.UseCaseDescription, *input)
	if err != nil {
		log.Printf("❌ Description summarization failed for %s: %v\n", input.FileName, err)
		h.recordFailure(recordID, err, start)
		return writeError(c, err, h.production)
	}

	h.recordSuccess(recordID, outcome)

	if h.storageService != nil {
		kind := services.FileKind(outcome.Metadata.FileType)
		if _, _, err := h.storageService.SaveUpload(input.Data, kind, services.UseCaseDescription); err != nil {
			log.Printf("⚠️  Failed to archive upload %s: %v\n", input.FileName, err)
		}
	}

	return c.JSON(models.DescriptionResponse{
		Success:     true,
		Description: outcome.Description,
		Metadata:    outcome.Metadata,
	})
}

func (h *DescriptionHandler) recordRun(input *services.Input) uuid.UUID {
	if h.extractionRepo == nil {
		return uuid.Nil
	}

	extraction := &models.Extraction{
		ID:       uuid.New(),
		FileName: input.FileName,
		UseCase:  string(services.UseCaseDescription),
		Status:   models.StatusProcessing,
		FileSize: int64(len(input.Data)),
	}
	if err := h.extractionRepo.Create(extraction); err != nil {
		log.Printf("⚠️  Failed to record extraction: %v\n", err)
		return uuid.Nil
	}
	return extraction.ID
}

func (h *DescriptionHandler) recordFailure(id uuid.UUID, runErr error, start time.Time) {
	if h.extractionRepo == nil || id == uuid.Nil {
		return
	}
	err := h.extractionRepo.UpdateFailure(
		id,
		string(services.CategoryOf(runErr)),
		services.UserMessage(runErr),
		time.Since(start).Milliseconds(),
	)
	if err != nil {
		log.Printf("⚠️  Failed to record extraction failure: %v\n", err)
	}
}

func (h *DescriptionHandler) recordSuccess(id uuid.UUID, outcome *services.Outcome) {
	if h.extractionRepo == nil || id == uuid.Nil {
		return
	}

	err := h.extractionRepo.UpdateSuccess(id, &repositories.ExtractionResultData{
		FileKind:   outcome.Metadata.FileType,
		DurationMS: outcome.Metadata.ProcessingMS,
		TokensUsed: outcome.Metadata.TokensUsed,
		TextLength: outcome.Metadata.TextLength,
		Result:     outcome.Description,
	})
	if err != nil {
		log.Printf("⚠️  Failed to record extraction result: %v\n", err)
	}
}
