package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rashigupta12/recuritment-sub001/internal/config"
	"github.com/rashigupta12/recuritment-sub001/internal/models"
)

// UseCase selects the prompt template and output contract. It is the only
// variation point between the two endpoints.
type UseCase string

const (
	UseCaseApplicant   UseCase = "applicant"
	UseCaseDescription UseCase = "job_description"
)

// Output-token budgets. Structured extraction needs room for the full
// record; a bullet summary does not.
const (
	applicantTokenBudget   int32 = 2048
	descriptionTokenBudget int32 = 512
)

// Input is the transient per-request document. Nothing here outlives the
// request.
type Input struct {
	FileName    string
	ContentType string
	Data        []byte
	JobTitle    string
}

// Outcome is the success side of a pipeline run. Record is set for the
// applicant use case, Description for the summarization use case.
type Outcome struct {
	Record      *models.ApplicantRecord
	Description string
	// Text is the normalized document text the prompt was built from.
	Text     string
	Metadata models.Metadata
}

type Pipeline struct {
	llm      LLMService
	prompts  *PromptBuilder
	retry    RetryPolicy
	minBound map[UseCase]int
	maxText  int
}

func NewPipeline(llm LLMService, cfg config.PipelineConfig) *Pipeline {
	return &Pipeline{
		llm:     llm,
		prompts: NewPromptBuilder(),
		retry: RetryPolicy{
			MaxRetries:          cfg.MaxRetries,
			RetryOnParseFailure: cfg.RetryOnParseFailure,
		},
		minBound: map[UseCase]int{
			UseCaseApplicant:   cfg.MinResumeLength,
			UseCaseDescription: cfg.MinDescriptionLength,
		},
		maxText: cfg.MaxTextLength,
	}
}

// Run executes one request through the staged pipeline:
// classify → extract → normalize → build prompt → complete → assemble.
// Any stage failure short-circuits with a typed error; only the completion
// stage retries internally.
func (p *Pipeline) Run(ctx context.Context, useCase UseCase, input Input) (*Outcome, error) {
	if p.llm == nil {
		return nil, NewPipelineError(
			ErrConfiguration,
			"Service is not configured. Please contact the administrator.",
			fmt.Errorf("llm client not initialized (missing API key)"),
		)
	}

	start := time.Now()

	kind, err := Classify(input.FileName, input.ContentType)
	if err != nil {
		return nil, err
	}

	extraction, err := ExtractorForKind(kind).Extract(input.Data)
	if err != nil {
		return nil, err
	}
	for _, warning := range extraction.Warnings {
		log.Printf("⚠️  Extraction warning (%s): %s\n", input.FileName, warning)
	}

	normalizer := Normalizer{MinLength: p.minBound[useCase], MaxLength: p.maxText}
	text, err := normalizer.Normalize(extraction.Text)
	if err != nil {
		return nil, err
	}

	var prompt string
	var budget int32
	switch useCase {
	case UseCaseApplicant:
		prompt = p.prompts.BuildApplicantExtractionPrompt(text)
		budget = applicantTokenBudget
	default:
		prompt = p.prompts.BuildDescriptionSummaryPrompt(text)
		budget = descriptionTokenBudget
	}

	var completion *CompletionResult
	var record models.ApplicantRecord
	err = p.retry.Do(ctx, func(ctx context.Context) error {
		result, err := p.llm.Complete(ctx, prompt, budget)
		if err != nil {
			return err
		}
		completion = result

		// Parsing inside the retried unit keeps RetryOnParseFailure honest:
		// with the flag off a malformed reply fails fast, with it on the
		// whole attempt repeats.
		if useCase == UseCaseApplicant {
			record = models.ApplicantRecord{}
			if err := json.Unmarshal([]byte(extractJSON(result.Text)), &record); err != nil {
				return NewPipelineError(
					ErrMalformedModelOutput,
					"AI service unavailable or returned invalid data.",
					fmt.Errorf("failed to parse model output: %w", err),
				)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metadata := models.Metadata{
		FileName:     input.FileName,
		FileType:     string(kind),
		FileSize:     int64(len(input.Data)),
		ProcessingMS: time.Since(start).Milliseconds(),
		TokensUsed:   completion.TokensUsed,
		TextLength:   len(text),
	}

	if useCase == UseCaseApplicant {
		assembleApplicant(&record, input)
		return &Outcome{Record: &record, Text: text, Metadata: metadata}, nil
	}

	return &Outcome{
		Description: strings.TrimSpace(stripCodeFences(completion.Text)),
		Text:        text,
		Metadata:    metadata,
	}, nil
}

// assembleApplicant overlays caller-supplied values onto the parsed record.
// Caller values win when present; otherwise the model-extracted value is
// kept; otherwise the field stays empty.
func assembleApplicant(record *models.ApplicantRecord, input Input) {
	if input.JobTitle != "" {
		record.JobTitle = input.JobTitle
	}
	if input.FileName != "" {
		record.ResumeAttachment = input.FileName
	}
	record.EnsureDefaults()
}

func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return text
}

// extractJSON pulls the JSON object or array out of a reply that may carry
// markdown fences or surrounding prose.
func extractJSON(text string) string {
	text = stripCodeFences(text)

	startObj := strings.Index(text, "{")
	endObj := strings.LastIndex(text, "}")
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	startArr := strings.Index(text, "[")
	endArr := strings.LastIndex(text, "]")
	if startArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
