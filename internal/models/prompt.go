package models

// Prompt is one row of the bilingual sentence corpus. The corpus is
// immutable reference data loaded once at process start.
type Prompt struct {
	SequenceNumber string `json:"sequence_number"`
	English        string `json:"english"`
	Hindi          string `json:"hindi"`
}
