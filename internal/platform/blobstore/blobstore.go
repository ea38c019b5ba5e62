// Package blobstore stores uploaded images in named buckets and maps them to
// public URLs.
package blobstore

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrExists      = errors.New("blob already exists")
	ErrInvalidPath = errors.New("invalid blob path")
	ErrUnknownURL  = errors.New("url does not belong to bucket")
)

type PutOptions struct {
	ContentType string
	// Upsert replaces an existing blob at the same path instead of failing.
	Upsert bool
}

// Store is the contract asset-owning records rely on.
type Store interface {
	// Put writes body to bucket/path and returns the stored path.
	Put(ctx context.Context, bucket, path string, body io.Reader, opts PutOptions) (string, error)
	// PublicURL resolves the reference stored on records.
	PublicURL(bucket, path string) string
	// Delete accepts either a bucket path or a URL produced by PublicURL.
	// Deleting a missing blob is not an error.
	Delete(ctx context.Context, bucket, pathOrURL string) error
	// ResolvePath maps a reference produced by PublicURL back to its path.
	ResolvePath(bucket, pathOrURL string) (string, error)
	// List returns every blob in bucket.
	List(ctx context.Context, bucket string) ([]Object, error)
}

type Object struct {
	Key     string
	Size    int64
	ModTime time.Time
}
