package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mfreeman451/dbplayground/pkg/columnar"
	"github.com/mfreeman451/dbplayground/pkg/graph"
	"github.com/mfreeman451/dbplayground/pkg/objectstore"
	"github.com/mfreeman451/dbplayground/pkg/vector"
)

// Duration is a time.Duration that unmarshals from either a JSON number
// (nanoseconds) or a Go duration string like "2s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// PlaygroundConfig is the top-level configuration for the playground server.
type PlaygroundConfig struct {
	ListenAddr    string             `json:"listen_addr"`            // e.g., :8080
	LiveInterval  Duration           `json:"live_interval,omitempty"`
	RequestRate   float64            `json:"request_rate,omitempty"` // requests/sec, 0 disables limiting
	RequestBurst  int                `json:"request_burst,omitempty"`
	ObjectStorage objectstore.Config `json:"object_storage"`
	Graph         graph.Config       `json:"graph"`
	Vector        vector.Config      `json:"vector"`
	Columnar      columnar.Config    `json:"columnar"`
}

// Validate implements Validator.
func (c *PlaygroundConfig) Validate() error {
	if c.ListenAddr == "" {
		return errMissingListenAddr
	}

	for _, v := range []Validator{&c.ObjectStorage, &c.Graph, &c.Vector, &c.Columnar} {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}
