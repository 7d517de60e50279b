package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rashigupta12/recuritment-sub001/internal/models"
	"github.com/rashigupta12/recuritment-sub001/internal/repositories"
	"github.com/rashigupta12/recuritment-sub001/internal/services"
)

type ApplicantHandler struct {
	pipeline       *services.Pipeline
	extractionRepo repositories.ExtractionRepository
	storageService services.StorageService
	indexer        services.Indexer
	maxFileSize    int64
	production     bool
}

func NewApplicantHandler(
	pipeline *services.Pipeline,
	extractionRepo repositories.ExtractionRepository,
	storageService services.StorageService,
	indexer services.Indexer,
	maxFileSize int64,
	production bool,
) *ApplicantHandler {
	return &ApplicantHandler{
		pipeline:       pipeline,
		extractionRepo: extractionRepo,
		storageService: storageService,
		indexer:        indexer,
		maxFileSize:    maxFileSize,
		production:     production,
	}
}

// HandleExtract handles POST /api/jobapplicant: structured applicant
// extraction from an uploaded resume.
func (h *ApplicantHandler) HandleExtract(c *fiber.Ctx) error {
	input, err := readUpload(c, h.maxFileSize)
	if err != nil {
		return writeError(c, err, h.production)
	}

	record := h.recordRun(input, services.UseCaseApplicant)
	start := time.Now()

	outcome, err := h.pipeline.Run(c.Context(), services.UseCaseApplicant, *input)
	if err != nil {
		log.Printf("❌ Applicant extraction failed for %s: %v\n", input.FileName, err)
		h.recordFailure(record, err, start)
		return writeError(c, err, h.production)
	}

	h.recordSuccess(record, outcome)
	h.archiveUpload(input, outcome.Metadata.FileType, services.UseCaseApplicant)

	if h.indexer != nil {
		// The index only needs a stable point id; mint one when history
		// is unavailable so indexing keeps working without Postgres.
		pointID := record
		if pointID == uuid.Nil {
			pointID = uuid.New()
		}
		h.indexer.Enqueue(services.IndexJob{
			ExtractionID:  pointID.String(),
			ApplicantName: outcome.Record.ApplicantName,
			JobTitle:      outcome.Record.JobTitle,
			Text:          outcome.Text,
		})
	}

	return c.JSON(models.ApplicantResponse{
		Success:  true,
		Data:     *outcome.Record,
		Metadata: outcome.Metadata,
	})
}

// recordRun opens the history row. History is best-effort: a nil repo or a
// failed insert never blocks the pipeline.
func (h *ApplicantHandler) recordRun(input *services.Input, useCase services.UseCase) uuid.UUID {
	if h.extractionRepo == nil {
		return uuid.Nil
	}

	extraction := &models.Extraction{
		ID:       uuid.New(),
		FileName: input.FileName,
		UseCase:  string(useCase),
		Status:   models.StatusProcessing,
		FileSize: int64(len(input.Data)),
	}
	if err := h.extractionRepo.Create(extraction); err != nil {
		log.Printf("⚠️  Failed to record extraction: %v\n", err)
		return uuid.Nil
	}
	return extraction.ID
}

func (h *ApplicantHandler) recordFailure(id uuid.UUID, runErr error, start time.Time) {
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

func (h *ApplicantHandler) recordSuccess(id uuid.UUID, outcome *services.Outcome) {
	if h.extractionRepo == nil || id == uuid.Nil {
		return
	}

	resultJSON, err := json.Marshal(outcome.Record)
	if err != nil {
		log.Printf("⚠️  Failed to encode extraction result: %v\n", err)
		return
	}

	err = h.extractionRepo.UpdateSuccess(id, &repositories.ExtractionResultData{
		FileKind:   outcome.Metadata.FileType,
		DurationMS: outcome.Metadata.ProcessingMS,
		TokensUsed: outcome.Metadata.TokensUsed,
		TextLength: outcome.Metadata.TextLength,
		Result:     string(resultJSON),
	})
	if err != nil {
		log.Printf("⚠️  Failed to record extraction result: %v\n", err)
	}
}

func (h *ApplicantHandler) archiveUpload(input *services.Input, fileType string, useCase services.UseCase) {
	if h.storageService == nil {
		return
	}
	if _, _, err := h.storageService.SaveUpload(input.Data, services.FileKind(fileType), useCase); err != nil {
		log.Printf("⚠️  Failed to archive upload %s: %v\n", input.FileName, err)
	}
}
