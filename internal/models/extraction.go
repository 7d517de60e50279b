package models

import (
	"time"

	"github.com/google/uuid"
)

type ExtractionStatus string

const (
	StatusProcessing ExtractionStatus = "processing"
	StatusCompleted  ExtractionStatus = "completed"
	StatusFailed     ExtractionStatus = "failed"
)

// Extraction records one pipeline run for operational history. The pipeline
// itself is stateless; handlers write these rows around it.
type Extraction struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FileName      string           `gorm:"type:text" json:"file_name"`
	FileKind      string           `gorm:"type:text" json:"file_kind"`
	UseCase       string           `gorm:"type:text" json:"use_case"`
	Status        ExtractionStatus `gorm:"not null;default:'processing'" json:"status"`
	FileSize      int64            `json:"file_size"`
	DurationMS    int64            `json:"duration_ms"`
	TokensUsed    int              `json:"tokens_used"`
	TextLength    int              `json:"text_length"`
	Result        string           `gorm:"type:text" json:"result,omitempty"`
	ErrorCategory string           `gorm:"type:text" json:"error_category,omitempty"`
	ErrorMessage  string           `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt     time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Extraction) TableName() string {
	return "extractions"
}
