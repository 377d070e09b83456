package columnar

import (
	"context"

	"github.com/mfreeman451/dbplayground/pkg/models"
)

//go:generate mockgen -destination=mock_columnar.go -package=columnar github.com/mfreeman451/dbplayground/pkg/columnar Service

// Service is the analytics surface the API and the e-commerce scenario
// consume.
type Service interface {
	SeedSampleData(ctx context.Context) (int, error)
	RecordSale(ctx context.Context, sale *models.Sale) error
	Analytics(ctx context.Context, query string) ([]models.AnalyticsRow, error)
	TableStats(ctx context.Context) (*models.TableStats, error)
	Close() error
}
