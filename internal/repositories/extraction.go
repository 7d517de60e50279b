package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rashigupta12/recuritment-sub001/internal/models"
)

type ExtractionRepository interface {
	Create(extraction *models.Extraction) error
	FindByID(id uuid.UUID) (*models.Extraction, error)
	ListRecent(limit int) ([]models.Extraction, error)
	UpdateSuccess(id uuid.UUID, result *ExtractionResultData) error
	UpdateFailure(id uuid.UUID, category, message string, durationMS int64) error
}

type ExtractionResultData struct {
	FileKind   string
	DurationMS int64
	TokensUsed int
	TextLength int
	Result     string
}

type extractionRepository struct {
	db *gorm.DB
}

func NewExtractionRepository(db *gorm.DB) ExtractionRepository {
	return &extractionRepository{db: db}
}

func (r *extractionRepository) Create(extraction *models.Extraction) error {
	if err := r.db.Create(extraction).Error; err != nil {
		return fmt.Errorf("failed to create extraction: %w", err)
	}
	return nil
}

func (r *extractionRepository) FindByID(id uuid.UUID) (*models.Extraction, error) {
	var extraction models.Extraction
	if err := r.db.Where("id = ?", id).First(&extraction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("extraction not found")
		}
		return nil, fmt.Errorf("failed to find extraction: %w", err)
	}
	return &extraction, nil
}

func (r *extractionRepository) ListRecent(limit int) ([]models.Extraction, error) {
	var extractions []models.Extraction
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&extractions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	return extractions, nil
}

func (r *extractionRepository) UpdateSuccess(id uuid.UUID, data *ExtractionResultData) error {
	result := r.db.Model(&models.Extraction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      models.StatusCompleted,
			"file_kind":   data.FileKind,
			"duration_ms": data.DurationMS,
			"tokens_used": data.TokensUsed,
			"text_length": data.TextLength,
			"result":      data.Result,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update extraction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("extraction not found")
	}
	return nil
}

func (r *extractionRepository) UpdateFailure(id uuid.UUID, category, message string, durationMS int64) error {
	result := r.db.Model(&models.Extraction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         models.StatusFailed,
			"error_category": category,
			"error_message":  message,
			"duration_ms":    durationMS,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update extraction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("extraction not found")
	}
	return nil
}
