package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"teka/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, "https://cdn.example.test/photos/").(*blobStorage)
}

func TestBlobStorage_UploadOpenDelete(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage(t)

	url, err := storage.Upload(ctx, "seller/photo 1.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.test/photos/seller/photo%201.jpg", url)

	r, contentType, err := storage.Open(ctx, "seller/photo 1.jpg")
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", contentType)

	require.NoError(t, storage.Delete(ctx, "seller/photo 1.jpg"))
	_, _, err = storage.Open(ctx, "seller/photo 1.jpg")
	assert.ErrorIs(t, err, service.ErrPhotoNotFound)
}

func TestBlobStorage_DeleteMissingIsNoop(t *testing.T) {
	storage := newMemStorage(t)

	assert.NoError(t, storage.Delete(context.Background(), "missing.png"))
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://photos", redactBucketURL("s3://photos?region=eu-west-1&access_key=x"))
	assert.Equal(t, "mem://", redactBucketURL("mem://"))
}
