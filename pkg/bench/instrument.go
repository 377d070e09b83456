// Package bench pkg/bench/instrument.go provides the timing wrapper the
// database client wrappers put around each of their operations.
package bench

import "time"

// FailurePolicy controls whether failed calls leave a sample behind.
type FailurePolicy int

const (
	// SkipFailures records nothing when the wrapped call fails.
	SkipFailures FailurePolicy = iota

	// RecordFailures records failed calls too, tagged status=error.
	RecordFailures
)

// Instrumenter times operations for one subsystem and forwards samples to a
// Recorder. It never alters the wrapped call's arguments, results, or error.
type Instrumenter struct {
	rec       Recorder
	subsystem string
	onFailure FailurePolicy
}

// InstrumenterOption configures an Instrumenter.
type InstrumenterOption func(*Instrumenter)

// WithFailureSamples makes failed calls leave a sample tagged status=error
// instead of vanishing from the metrics.
func WithFailureSamples() InstrumenterOption {
	return func(in *Instrumenter) {
		in.onFailure = RecordFailures
	}
}

// NewInstrumenter creates a wrapper bound to one subsystem label.
func NewInstrumenter(rec Recorder, subsystem string, opts ...InstrumenterOption) *Instrumenter {
	in := &Instrumenter{
		rec:       rec,
		subsystem: subsystem,
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Do times fn and records a sample on success. On failure the error is
// returned untouched; whether a sample is recorded depends on the failure
// policy.
func (in *Instrumenter) Do(operation string, fn func() error) error {
	start := time.Now()

	err := fn()
	if err != nil {
		if in.onFailure == RecordFailures {
			in.rec.Record(in.subsystem, operation, elapsedMS(start), map[string]string{"status": "error"})
		}

		return err
	}

	in.rec.Record(in.subsystem, operation, elapsedMS(start), nil)

	return nil
}

// Call is the value-returning variant of Do with identical semantics.
func Call[T any](in *Instrumenter, operation string, fn func() (T, error)) (T, error) {
	start := time.Now()

	v, err := fn()
	if err != nil {
		if in.onFailure == RecordFailures {
			in.rec.Record(in.subsystem, operation, elapsedMS(start), map[string]string{"status": "error"})
		}

		return v, err
	}

	in.rec.Record(in.subsystem, operation, elapsedMS(start), nil)

	return v, nil
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
