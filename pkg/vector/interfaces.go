package vector

import (
	"context"

	"github.com/mfreeman451/dbplayground/pkg/models"
)

//go:generate mockgen -destination=mock_vector.go -package=vector github.com/mfreeman451/dbplayground/pkg/vector Service

// Service is the vector search surface the API and the e-commerce scenario
// consume.
type Service interface {
	AddDocument(ctx context.Context, id, text string, metadata map[string]string) error
	SearchSimilar(ctx context.Context, text string, topK int) ([]models.SearchResult, error)
	Stats(ctx context.Context) (*models.CollectionStats, error)
	Close() error
}
