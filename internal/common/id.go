package common

import (
	"encoding/base64"

	"github.com/google/uuid"
)

const shortIDLen = 6

// NewShortID returns a short opaque token derived from a random UUID.
// It is used for user IDs and per-submission identifiers.
func NewShortID() string {
	u := uuid.New()
	return base64.RawURLEncoding.EncodeToString(u[:])[:shortIDLen]
}
