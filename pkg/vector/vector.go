// Package vector pkg/vector/vector.go wraps the Qdrant gRPC client behind
// the Service interface. Every operation is timed and forwarded to the
// benchmark tracker under the "vector" subsystem.
package vector

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"

	"github.com/mfreeman451/dbplayground/pkg/bench"
	"github.com/mfreeman451/dbplayground/pkg/models"
)

const (
	subsystem = "vector"

	defaultPort  = 6334
	defaultTopK  = 5
	maxRecvBytes = 16 * 1024 * 1024 // generous headroom for large result pages
)

// Config holds the Qdrant connection settings.
type Config struct {
	Host       string `json:"host"` // e.g., localhost
	Port       int    `json:"port"` // gRPC port, default 6334
	Collection string `json:"collection"`
	Dimensions int    `json:"dimensions,omitempty"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errMissingHost
	}

	if c.Port == 0 {
		c.Port = defaultPort
	}

	if c.Collection == "" {
		c.Collection = "documents"
	}

	return nil
}

// Client implements Service over a Qdrant collection.
type Client struct {
	qc         *qdrant.Client
	collection string
	embedder   *Embedder
	inst       *bench.Instrumenter
}

// New connects to Qdrant and makes sure the configured collection exists
// with the embedder's dimensionality.
func New(ctx context.Context, cfg *Config, rec bench.Recorder) (*Client, error) {
	qc, err := qdrant.NewClient(&qdrant.Config{
		Host: cfg.Host,
		Port: cfg.Port,
		GrpcOptions: []grpc.DialOption{
			grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxRecvBytes)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToConnect, err)
	}

	embedder := NewEmbedder(cfg.Dimensions)

	exists, err := qc.CollectionExists(ctx, cfg.Collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToEnsure, err)
	}

	if !exists {
		err := qc.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: cfg.Collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(embedder.Dimensions()), //nolint:gosec // dims is a small positive int
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToEnsure, err)
		}
	}

	return &Client{
		qc:         qc,
		collection: cfg.Collection,
		embedder:   embedder,
		inst:       bench.NewInstrumenter(rec, subsystem),
	}, nil
}

// AddDocument embeds the text and upserts it under a point ID derived from
// the document ID, so re-adding the same ID replaces the document.
func (c *Client) AddDocument(ctx context.Context, id, text string, metadata map[string]string) error {
	if id == "" {
		return errEmptyDocumentID
	}

	if text == "" {
		return errEmptyText
	}

	return c.inst.Do("add_document", func() error {
		payload := map[string]any{
			"doc_id": id,
			"text":   text,
		}

		if len(metadata) > 0 {
			meta := make(map[string]any, len(metadata))
			for k, v := range metadata {
				meta[k] = v
			}

			payload["metadata"] = meta
		}

		_, err := c.qc.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: c.collection,
			Points: []*qdrant.PointStruct{
				{
					Id:      qdrant.NewIDNum(pointID(id)),
					Vectors: qdrant.NewVectors(c.embedder.Embed(text)...),
					Payload: qdrant.NewValueMap(payload),
				},
			},
		})
		if err != nil {
			return fmt.Errorf("add document %q: %w", id, err)
		}

		return nil
	})
}

// SearchSimilar embeds the query text and returns the topK closest
// documents by cosine similarity.
func (c *Client) SearchSimilar(ctx context.Context, text string, topK int) ([]models.SearchResult, error) {
	if topK < 1 {
		topK = defaultTopK
	}

	return bench.Call(c.inst, "search", func() ([]models.SearchResult, error) {
		points, err := c.qc.Query(ctx, &qdrant.QueryPoints{
			CollectionName: c.collection,
			Query:          qdrant.NewQuery(c.embedder.Embed(text)...),
			Limit:          qdrant.PtrOf(uint64(topK)), //nolint:gosec // topK is a small positive int
			WithPayload:    qdrant.NewWithPayload(true),
		})
		if err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}

		results := make([]models.SearchResult, 0, len(points))

		for _, p := range points {
			r := models.SearchResult{Score: p.GetScore()}

			payload := p.GetPayload()
			if v, ok := payload["doc_id"]; ok {
				r.ID = v.GetStringValue()
			}

			if v, ok := payload["text"]; ok {
				r.Text = v.GetStringValue()
			}

			if v, ok := payload["metadata"]; ok {
				if fields := v.GetStructValue().GetFields(); len(fields) > 0 {
					r.Metadata = make(map[string]string, len(fields))
					for k, f := range fields {
						r.Metadata[k] = f.GetStringValue()
					}
				}
			}

			results = append(results, r)
		}

		return results, nil
	})
}

// Stats reports the collection's point count and dimensionality.
func (c *Client) Stats(ctx context.Context) (*models.CollectionStats, error) {
	return bench.Call(c.inst, "collection_stats", func() (*models.CollectionStats, error) {
		info, err := c.qc.GetCollectionInfo(ctx, c.collection)
		if err != nil {
			return nil, fmt.Errorf("collection stats: %w", err)
		}

		return &models.CollectionStats{
			Collection: c.collection,
			Points:     info.GetPointsCount(),
			Dimensions: c.embedder.Dimensions(),
		}, nil
	})
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.qc.Close()
}

// pointID maps a document ID onto Qdrant's numeric point ID space.
func pointID(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))

	return h.Sum64()
}
