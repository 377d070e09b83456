// Package bench pkg/bench/bench.go holds the in-memory benchmark tracker:
// an append-only sequence of timing samples with filtered listing and
// per-(subsystem, operation) summary aggregation.
package bench

import (
	"encoding/json"
	"io"
	"math"
	"sync"
	"time"

	"github.com/mfreeman451/dbplayground/pkg/models"
)

// Tracker implements Store. Samples live for the process lifetime (or until
// Clear); there is no eviction. The mutex makes the tracker safe for the
// concurrent handlers the HTTP server dispatches.
type Tracker struct {
	mu      sync.RWMutex
	samples []models.Sample
}

// filterCheck is a type for individual sample filter checks.
type filterCheck func(*models.Sample, *models.SampleFilter) bool

// NewTracker creates an empty benchmark tracker.
func NewTracker() *Tracker {
	return &Tracker{
		samples: make([]models.Sample, 0),
	}
}

// Record appends one sample stamped with the current wall-clock time.
// Negative durations are clamped to zero. The attributes map is copied so
// the stored sample stays immutable.
func (t *Tracker) Record(subsystem, operation string, durationMS float64, attributes map[string]string) {
	if durationMS < 0 {
		durationMS = 0
	}

	var attrs map[string]string
	if len(attributes) > 0 {
		attrs = make(map[string]string, len(attributes))
		for k, v := range attributes {
			attrs[k] = v
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.samples = append(t.samples, models.Sample{
		Timestamp:  time.Now(),
		Subsystem:  subsystem,
		Operation:  operation,
		DurationMS: durationMS,
		Attributes: attrs,
	})
}

// ListAll returns a snapshot copy of every sample in insertion order.
func (t *Tracker) ListAll() []models.Sample {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.Sample, len(t.samples))
	copy(out, t.samples)

	return out
}

// ListFiltered returns the samples matching the filter, preserving relative
// order. A nil filter or empty field matches everything; unknown values
// simply yield an empty result.
func (t *Tracker) ListFiltered(filter *models.SampleFilter) []models.Sample {
	if filter == nil {
		return t.ListAll()
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.Sample, 0, len(t.samples))

	for i := range t.samples {
		if t.matchesFilter(&t.samples[i], filter) {
			out = append(out, t.samples[i])
		}
	}

	return out
}

// matchesFilter checks a sample against all filter criteria.
func (*Tracker) matchesFilter(s *models.Sample, filter *models.SampleFilter) bool {
	checks := []filterCheck{
		checkSubsystem,
		checkOperation,
	}

	for _, check := range checks {
		if !check(s, filter) {
			return false
		}
	}

	return true
}

func checkSubsystem(s *models.Sample, filter *models.SampleFilter) bool {
	return filter.Subsystem == "" || s.Subsystem == filter.Subsystem
}

func checkOperation(s *models.Sample, filter *models.SampleFilter) bool {
	return filter.Operation == "" || s.Operation == filter.Operation
}

// Summarize groups all samples by (subsystem, operation) and derives
// count/total/min/max/avg per group. Groups appear in first-seen key order.
// The result is recomputed from the current samples on every call.
func (t *Tracker) Summarize() []models.Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	type key struct {
		subsystem string
		operation string
	}

	groups := make(map[key]*models.Summary)
	order := make([]key, 0)

	for i := range t.samples {
		s := &t.samples[i]
		k := key{subsystem: s.Subsystem, operation: s.Operation}

		g, exists := groups[k]
		if !exists {
			g = &models.Summary{
				Subsystem: s.Subsystem,
				Operation: s.Operation,
				MinMS:     s.DurationMS,
				MaxMS:     s.DurationMS,
			}
			groups[k] = g
			order = append(order, k)
		}

		g.Count++
		g.TotalMS += s.DurationMS

		if s.DurationMS < g.MinMS {
			g.MinMS = s.DurationMS
		}

		if s.DurationMS > g.MaxMS {
			g.MaxMS = s.DurationMS
		}
	}

	out := make([]models.Summary, 0, len(order))

	for _, k := range order {
		g := groups[k]
		g.AvgMS = round2(g.TotalMS / float64(g.Count))
		out = append(out, *g)
	}

	return out
}

// Export writes the full sample list as JSON. Samples are not flushed; this
// is a snapshot download, not persistence.
func (t *Tracker) Export(w io.Writer) error {
	samples := t.ListAll()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(samples)
}

// Clear discards every stored sample. Idempotent.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.samples = t.samples[:0]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
