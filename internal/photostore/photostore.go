// Package photostore stores photo bytes and hands back opaque URIs for
// the database to reference. The engine never keeps image bytes itself.
package photostore

import (
	"context"
	"io"
)

type PhotoStore interface {
	// Save stores the image and returns its opaque URI.
	Save(ctx context.Context, r io.Reader) (uri string, err error)
	Get(ctx context.Context, uri string) (io.ReadCloser, error)
	Delete(ctx context.Context, uri string) error
}
