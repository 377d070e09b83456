package bench

import (
	"io"

	"github.com/mfreeman451/dbplayground/pkg/models"
)

//go:generate mockgen -destination=mock_bench.go -package=bench github.com/mfreeman451/dbplayground/pkg/bench Recorder,Store

// Recorder is the write side of the tracker. Database client wrappers hold
// one of these; they never read metrics back.
type Recorder interface {
	Record(subsystem, operation string, durationMS float64, attributes map[string]string)
}

// Reader is the query side consumed by the reporting endpoints.
type Reader interface {
	ListAll() []models.Sample
	ListFiltered(filter *models.SampleFilter) []models.Sample
	Summarize() []models.Summary
	Export(w io.Writer) error
}

// Store is the full tracker contract: record, query, reset.
type Store interface {
	Recorder
	Reader
	Clear()
}
