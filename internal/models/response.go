package models

// Metadata accompanies every successful pipeline response.
type Metadata struct {
	FileName     string `json:"file_name"`
	FileType     string `json:"file_type"`
	FileSize     int64  `json:"file_size"`
	ProcessingMS int64  `json:"processing_ms"`
	TokensUsed   int    `json:"tokens_used"`
	TextLength   int    `json:"text_length"`
}

type ApplicantResponse struct {
	Success  bool            `json:"success"`
	Data     ApplicantRecord `json:"data"`
	Metadata Metadata        `json:"metadata"`
}

type DescriptionResponse struct {
	Success     bool     `json:"success"`
	Description string   `json:"description"`
	Metadata    Metadata `json:"metadata"`
}

// ErrorResponse is the single failure envelope shared by all endpoints.
// Details is only populated outside production.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

type SearchRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

type SearchMatch struct {
	ExtractionID  string  `json:"extraction_id"`
	Score         float32 `json:"score"`
	ApplicantName string  `json:"applicant_name"`
	JobTitle      string  `json:"job_title"`
}

type SearchResponse struct {
	Success bool          `json:"success"`
	Results []SearchMatch `json:"results"`
}
