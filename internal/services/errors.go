package services

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorCategory is the closed set of pipeline failure modes. Every stage
// wraps its failure in a PipelineError carrying exactly one category.
type ErrorCategory string

const (
	ErrMissingInput         ErrorCategory = "missing_input"
	ErrUnsupportedType      ErrorCategory = "unsupported_type"
	ErrFileTooLarge         ErrorCategory = "file_too_large"
	ErrExtractionFailed     ErrorCategory = "extraction_failed"
	ErrEmptyDocument        ErrorCategory = "empty_document"
	ErrTooShort             ErrorCategory = "too_short"
	ErrUpstream             ErrorCategory = "upstream_error"
	ErrMalformedModelOutput ErrorCategory = "malformed_model_output"
	ErrConfiguration        ErrorCategory = "configuration_error"
	ErrInternal             ErrorCategory = "internal_error"
)

// PipelineError pairs a user-safe message with the wrapped internal cause.
type PipelineError struct {
	Category ErrorCategory
	Message  string
	Err      error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewPipelineError(category ErrorCategory, message string, err error) *PipelineError {
	return &PipelineError{Category: category, Message: message, Err: err}
}

// CategoryOf resolves the category of any error returned by the pipeline.
// Untyped errors map to ErrInternal.
func CategoryOf(err error) ErrorCategory {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrInternal
}

// UserMessage is the sanitized message shown to callers. Raw detail never
// reaches the response in production.
func UserMessage(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return "An unexpected error occurred. Please try again."
}

// Detail returns the wrapped internal cause, for non-production responses.
func Detail(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err.Error()
	}
	return err.Error()
}

// HTTPStatus maps an error category to the response status code.
func HTTPStatus(err error) int {
	switch CategoryOf(err) {
	case ErrMissingInput, ErrExtractionFailed, ErrEmptyDocument, ErrTooShort:
		return fiber.StatusBadRequest
	case ErrFileTooLarge:
		return fiber.StatusRequestEntityTooLarge
	case ErrUnsupportedType:
		return fiber.StatusUnsupportedMediaType
	case ErrConfiguration:
		return fiber.StatusInternalServerError
	case ErrUpstream, ErrMalformedModelOutput:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
