package blob

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/archivehq/whatsapp-import/internal/config"
)

// Client wraps the media bucket. Retrieval is always by public URL: the
// store serves every object under a fixed public base URL, no signing.
type Client struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}

	return NewWithBucket(bucket, cfg.Storage.PublicBaseURL), nil
}

// NewWithBucket wires an already-open bucket; tests pass a memblob bucket.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string) *Client {
	return &Client{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (c *Client) Close() {
	_ = c.bucket.Close()
}

// Upload stores an object and returns its public URL. An already-existing
// key is treated as already uploaded: the object is left untouched and its
// URL is reused, which keeps repeated batch runs with deterministic keys
// from failing.
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	key = sanitizeKey(key)

	exists, err := c.bucket.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to check object %s: %w", key, err)
	}
	if exists {
		return c.publicURL(key), nil
	}

	w, err := c.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to open writer for %s: %w", key, err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to commit object %s: %w", key, err)
	}

	return c.publicURL(key), nil
}

func (c *Client) publicURL(key string) string {
	return c.publicBaseURL + "/" + key
}

// sanitizeKey prevents path traversal in object keys.
func sanitizeKey(key string) string {
	key = filepath.ToSlash(key)
	key = strings.TrimLeft(key, "/")
	parts := strings.Split(key, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, "/")
}
