package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"2s"`, want: 2 * time.Second},
		{name: "numeric nanoseconds", input: `1500000000`, want: 1500 * time.Millisecond},
		{name: "bad string", input: `"two seconds"`, wantErr: true},
		{name: "wrong type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration

			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestPlaygroundConfigValidate(t *testing.T) {
	cfg := PlaygroundConfig{}
	require.Error(t, cfg.Validate())

	cfg.ListenAddr = ":8080"
	require.Error(t, cfg.Validate(), "client configs are still empty")

	cfg.ObjectStorage.Endpoint = "localhost:9000"
	cfg.ObjectStorage.Bucket = "playground"
	cfg.Graph.URI = "bolt://localhost:7687"
	cfg.Vector.Host = "localhost"
	cfg.Columnar.DBPath = ":memory:"

	require.NoError(t, cfg.Validate())

	// Vector validation fills in defaults.
	assert.Equal(t, 6334, cfg.Vector.Port)
	assert.Equal(t, "documents", cfg.Vector.Collection)
}
