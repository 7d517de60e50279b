package services

import (
	"fmt"
	"unicode/utf8"
)

// textExtractor decodes bytes as UTF-8 verbatim. It succeeds on any
// decodable input; length checks belong to the normalizer.
type textExtractor struct{}

func (t *textExtractor) Extract(data []byte) (*ExtractionResult, error) {
	if !utf8.Valid(data) {
		return nil, NewPipelineError(
			ErrExtractionFailed,
			"Could not read the uploaded text file. It is not valid UTF-8.",
			fmt.Errorf("invalid UTF-8 byte sequence"),
		)
	}

	return &ExtractionResult{Text: string(data)}, nil
}
