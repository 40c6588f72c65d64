// Package vision defines the optional AI photo-description capability.
package vision

import "context"

// Describer suggests a short item description from a photo.
type Describer interface {
	Describe(ctx context.Context, image []byte, mimeType string) (string, error)
}
