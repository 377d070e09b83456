// Package objectstore pkg/objectstore/objectstore.go wraps a MinIO bucket
// behind the Service interface. Every operation is timed and forwarded to
// the benchmark tracker under the "object_storage" subsystem.
package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mfreeman451/dbplayground/pkg/bench"
	"github.com/mfreeman451/dbplayground/pkg/models"
)

const subsystem = "object_storage"

// Config holds the MinIO connection settings.
type Config struct {
	Endpoint  string `json:"endpoint"`   // e.g., localhost:9000
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	UseSSL    bool   `json:"use_ssl"`
	Bucket    string `json:"bucket"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errMissingEndpoint
	}

	if c.Bucket == "" {
		return errMissingBucket
	}

	return nil
}

// Client implements Service over a MinIO bucket.
type Client struct {
	mc     *minio.Client
	bucket string
	inst   *bench.Instrumenter
}

// New connects to MinIO and makes sure the configured bucket exists.
func New(ctx context.Context, cfg *Config, rec bench.Recorder) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToConnect, err)
	}

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToEnsure, err)
	}

	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToEnsure, err)
		}
	}

	return &Client{
		mc:     mc,
		bucket: cfg.Bucket,
		inst:   bench.NewInstrumenter(rec, subsystem),
	}, nil
}

// Upload stores one object and returns its metadata.
func (c *Client) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (*models.FileInfo, error) {
	if name == "" {
		return nil, errEmptyName
	}

	return bench.Call(c.inst, "upload", func() (*models.FileInfo, error) {
		info, err := c.mc.PutObject(ctx, c.bucket, name, r, size, minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			return nil, fmt.Errorf("upload %q: %w", name, err)
		}

		return &models.FileInfo{
			Name:         info.Key,
			Size:         info.Size,
			LastModified: info.LastModified,
			ContentType:  contentType,
		}, nil
	})
}

// Download streams one object. The caller closes the returned reader.
func (c *Client) Download(ctx context.Context, name string) (io.ReadCloser, *models.FileInfo, error) {
	var info *models.FileInfo

	rc, err := bench.Call(c.inst, "download", func() (io.ReadCloser, error) {
		stat, err := c.mc.StatObject(ctx, c.bucket, name, minio.StatObjectOptions{})
		if err != nil {
			if minio.ToErrorResponse(err).Code == "NoSuchKey" {
				return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
			}

			return nil, fmt.Errorf("stat %q: %w", name, err)
		}

		obj, err := c.mc.GetObject(ctx, c.bucket, name, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("download %q: %w", name, err)
		}

		info = &models.FileInfo{
			Name:         stat.Key,
			Size:         stat.Size,
			LastModified: stat.LastModified,
			ContentType:  stat.ContentType,
		}

		return obj, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return rc, info, nil
}

// List returns metadata for every object in the bucket.
func (c *Client) List(ctx context.Context) ([]models.FileInfo, error) {
	return bench.Call(c.inst, "list_files", func() ([]models.FileInfo, error) {
		files := make([]models.FileInfo, 0)

		for obj := range c.mc.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				return nil, fmt.Errorf("list objects: %w", obj.Err)
			}

			files = append(files, models.FileInfo{
				Name:         obj.Key,
				Size:         obj.Size,
				LastModified: obj.LastModified,
				ContentType:  obj.ContentType,
			})
		}

		return files, nil
	})
}

// Delete removes one object. Deleting a missing object is not an error at
// the MinIO layer.
func (c *Client) Delete(ctx context.Context, name string) error {
	if name == "" {
		return errEmptyName
	}

	return c.inst.Do("delete", func() error {
		if err := c.mc.RemoveObject(ctx, c.bucket, name, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("delete %q: %w", name, err)
		}

		return nil
	})
}
