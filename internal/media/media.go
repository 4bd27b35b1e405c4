// Package media stores uploaded media assets in an S3-compatible object
// store and hands back publicly addressable URLs.
package media

import (
	"context"
	"io"
)

// Storage is the external upload collaborator used by the food service.
type Storage interface {
	// Upload stores body under key and returns the object's public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
