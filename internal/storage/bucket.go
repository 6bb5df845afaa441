// Package storage provides blob-backed document content access.
package storage

import (
	"context"
	"io"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Drivers for local filesystem and in-memory buckets.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"

	apperrors "github.com/allisson/docvault/internal/errors"
)

// ContentStore reads stored document content by storage key.
type ContentStore interface {
	// NewReader opens a streaming reader for the object at key.
	// Returns ErrNotFound if the object does not exist.
	NewReader(ctx context.Context, key string) (io.ReadCloser, error)

	// Attributes returns the content type and size of the object at key.
	// Returns ErrNotFound if the object does not exist.
	Attributes(ctx context.Context, key string) (*ContentAttributes, error)

	// Close releases the underlying bucket resources.
	Close() error
}

// ContentAttributes describes a stored object.
type ContentAttributes struct {
	ContentType string
	Size        int64
}

// bucketContentStore implements ContentStore over a gocloud.dev blob bucket.
type bucketContentStore struct {
	bucket *blob.Bucket
}

// OpenBucket opens a ContentStore from a bucket URL
// (e.g., "file:///var/lib/docvault/documents", "mem://").
func OpenBucket(ctx context.Context, bucketURL string) (ContentStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open content bucket")
	}
	return &bucketContentStore{bucket: bucket}, nil
}

// NewContentStore wraps an already-open bucket. Used by tests with memblob.
func NewContentStore(bucket *blob.Bucket) ContentStore {
	return &bucketContentStore{bucket: bucket}
}

func (b *bucketContentStore) NewReader(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := b.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrNotFound(err) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "content not found")
		}
		return nil, apperrors.Wrap(err, "failed to open content reader")
	}
	return reader, nil
}

func (b *bucketContentStore) Attributes(ctx context.Context, key string) (*ContentAttributes, error) {
	attrs, err := b.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrNotFound(err) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "content not found")
		}
		return nil, apperrors.Wrap(err, "failed to read content attributes")
	}
	return &ContentAttributes{
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
	}, nil
}

func (b *bucketContentStore) Close() error {
	return b.bucket.Close()
}

// gcerrNotFound reports whether err is a gocloud not-found error.
func gcerrNotFound(err error) bool {
	return gcerrors.Code(err) == gcerrors.NotFound
}
