package services

import (
	"fmt"
)

// TruncationMarker is appended whenever normalized text is cut at the
// maximum length, so downstream consumers can see the cut happened.
const TruncationMarker = "\n\n[... text truncated ...]"

// Normalizer enforces the length bounds on extracted text before it is
// embedded in a prompt. It only ever fails on too-short input; over-long
// text is truncated, never rejected.
type Normalizer struct {
	MinLength int
	MaxLength int
}

// Normalize cleans line endings, trims, then applies the length bounds.
// Idempotent on already-normalized text of valid length.
func (n Normalizer) Normalize(text string) (string, error) {
	text = cleanNewlines(text)

	if len([]rune(text)) < n.MinLength {
		return "", NewPipelineError(
			ErrTooShort,
			fmt.Sprintf("Document is too short to process. At least %d characters of text are required.", n.MinLength),
			fmt.Errorf("normalized length %d below minimum %d", len([]rune(text)), n.MinLength),
		)
	}

	if runes := []rune(text); len(runes) > n.MaxLength {
		text = string(runes[:n.MaxLength]) + TruncationMarker
	}

	return text, nil
}
