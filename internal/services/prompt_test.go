package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildApplicantExtractionPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildApplicantExtractionPrompt("RESUME BODY HERE")

	assert.Contains(t, prompt, "RESUME BODY HERE")
	assert.Contains(t, prompt, "ONLY a JSON object")
	assert.Contains(t, prompt, "YYYY-MM-DD")
	assert.Contains(t, prompt, "YYYY-01-01")
	assert.Contains(t, prompt, "current_company")
	assert.Contains(t, prompt, "custom_experience")
	assert.Contains(t, prompt, "custom_education")
	assert.Contains(t, prompt, "Never use null")
}

func TestBuildDescriptionSummaryPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildDescriptionSummaryPrompt("JD BODY HERE")

	assert.Contains(t, prompt, "JD BODY HERE")
	assert.Contains(t, prompt, "6 to 8 bullets")
	assert.Contains(t, prompt, "15 words or fewer")
	assert.NotContains(t, prompt, "JSON")
}

func TestPromptsArePure(t *testing.T) {
	pb := NewPromptBuilder()
	assert.Equal(t,
		pb.BuildApplicantExtractionPrompt("same input"),
		pb.BuildApplicantExtractionPrompt("same input"),
	)
}
