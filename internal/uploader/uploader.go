// Package uploader persists finished recordings to remote object storage.
package uploader

import (
	"context"
	"io"
)

// Uploader stores a named file in remote storage and returns an opaque
// identifier for it. Implementations must not retry; the caller decides how
// failures are surfaced.
type Uploader interface {
	Upload(ctx context.Context, name string, body io.Reader) (string, error)
}
