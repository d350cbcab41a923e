package interfaces

import (
	"context"
	"io"
)

// IBlobStore abstracts the file/attachment store (S3).
//
// Upload returns a stable retrievable URL for the stored object. Delete is
// idempotent: deleting an object that no longer exists is a no-op success.

type IBlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}
