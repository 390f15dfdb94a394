// Package storage keeps listing photos in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/url"
	"path"
	"strings"

	"teka/config"
	"teka/internal/domain/service"
	"teka/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob" // azblob:// buckets
	_ "gocloud.dev/blob/fileblob"  // file:// buckets
	_ "gocloud.dev/blob/gcsblob"   // gs:// buckets
	_ "gocloud.dev/blob/memblob"   // mem:// buckets
	_ "gocloud.dev/blob/s3blob"    // s3:// buckets
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the photo storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStorage opens the configured bucket and closes it on shutdown.
func NewPhotoStorage(params Params) (service.PhotoStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactBucketURL(cfg.BucketURL))
	}

	params.Logger.Info("Photo bucket opened", slog.String("bucket", redactBucketURL(cfg.BucketURL)))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.PhotoStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload streams r into key and returns the public URL of the object.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.publicURL(key), nil
}

// Delete removes key; a missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Open returns a reader over key and its content type.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrPhotoNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	contentType := r.ContentType()
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(key))
	}

	return r, contentType, nil
}

func (s *blobStorage) publicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}

	return raw
}
