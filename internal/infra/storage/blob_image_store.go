// Package storage implements the image blob store on top of gocloud.dev,
// so local disk and cloud buckets share one code path.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"faranah/config"
	"faranah/internal/domain/lifecycle"
	"faranah/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes usable in deployment.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// blobImageStore implements service.ImageStore over a gocloud bucket.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and binds its lifetime to the app.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Image store initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return NewBlobImageStore(bucket, cfg.PublicBaseURL), nil
}

// NewBlobImageStore wraps an already-open bucket. Exposed for tests, which
// hand in a memblob bucket.
func NewBlobImageStore(bucket *blob.Bucket, publicBaseURL string) service.ImageStore {
	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Put writes an image under the given key.
func (s *blobImageStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write object %s", key)
	}

	return nil
}

// Delete removes the object at key. Deleting a missing object is not an error.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrapf(err, "failed to check object %s", key)
	}
	if !exists {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// Exists reports whether an object is present at key.
func (s *blobImageStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check object %s", key)
	}

	return exists, nil
}

// PublicURL renders the browser-facing URL for a stored object.
func (s *blobImageStore) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}
