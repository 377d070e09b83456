package objectstore

import (
	"context"
	"io"

	"github.com/mfreeman451/dbplayground/pkg/models"
)

//go:generate mockgen -destination=mock_objectstore.go -package=objectstore github.com/mfreeman451/dbplayground/pkg/objectstore Service

// Service is the object storage surface the API and the e-commerce scenario
// consume.
type Service interface {
	Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (*models.FileInfo, error)
	Download(ctx context.Context, name string) (io.ReadCloser, *models.FileInfo, error)
	List(ctx context.Context) ([]models.FileInfo, error)
	Delete(ctx context.Context, name string) error
}
