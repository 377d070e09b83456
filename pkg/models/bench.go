// Package models pkg/models/bench.go
package models

import "time"

// Sample is a single observation of a timed database operation. Samples are
// immutable once recorded; the tracker hands out copies.
type Sample struct {
	Timestamp  time.Time         `json:"timestamp"`
	Subsystem  string            `json:"subsystem"`
	Operation  string            `json:"operation"`
	DurationMS float64           `json:"duration_ms"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Summary aggregates every sample sharing one (subsystem, operation) pair.
type Summary struct {
	Subsystem string  `json:"subsystem"`
	Operation string  `json:"operation"`
	Count     int     `json:"count"`
	TotalMS   float64 `json:"total_ms"`
	MinMS     float64 `json:"min_ms"`
	MaxMS     float64 `json:"max_ms"`
	AvgMS     float64 `json:"avg_ms"`
}

// SampleFilter narrows a sample listing. Empty fields match everything.
type SampleFilter struct {
	Subsystem string `json:"subsystem,omitempty"`
	Operation string `json:"operation,omitempty"`
}
