package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrAssetNotFound is returned when a source has no asset under the requested name.
var ErrAssetNotFound = errors.New("asset not found")

// Asset is an open static file. Callers must Close it.
type Asset struct {
	Body         io.ReadCloser
	ContentType  string
	Size         int64
	LastModified *time.Time
}

// Source serves the site's static pages and stylesheets verbatim.
type Source interface {
	Open(ctx context.Context, name string) (*Asset, error)
}
