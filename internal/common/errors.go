// Package common defines shared sentinel errors and small helpers used
// across the service layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")

	// Authentication errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLoginInProgress    = errors.New("login already in progress")

	// Validation errors.
	ErrMissingInput     = errors.New("all inputs are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password does not meet requirements")

	// Submission pipeline errors.
	ErrAudioProcessing = errors.New("audio processing failed")
	ErrUploadFailed    = errors.New("upload failed")

	// Prompt corpus errors.
	ErrCorpusUnavailable = errors.New("sentence corpus unavailable")
)
