package bench

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errBoom = errors.New("boom")

func TestInstrumenterDoRecordsOnSuccess(t *testing.T) {
	tracker := NewTracker()
	in := NewInstrumenter(tracker, "graph")

	called := false

	err := in.Do("create_user", func() error {
		called = true
		time.Sleep(time.Millisecond)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	samples := tracker.ListAll()
	require.Len(t, samples, 1)
	assert.Equal(t, "graph", samples[0].Subsystem)
	assert.Equal(t, "create_user", samples[0].Operation)
	assert.Greater(t, samples[0].DurationMS, 0.0)
}

func TestInstrumenterDoSkipsFailedCallsByDefault(t *testing.T) {
	tracker := NewTracker()
	in := NewInstrumenter(tracker, "graph")

	err := in.Do("create_user", func() error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	assert.Empty(t, tracker.ListAll())
}

func TestInstrumenterDoRecordsFailuresWhenConfigured(t *testing.T) {
	tracker := NewTracker()
	in := NewInstrumenter(tracker, "graph", WithFailureSamples())

	err := in.Do("create_user", func() error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	samples := tracker.ListAll()
	require.Len(t, samples, 1)
	assert.Equal(t, "error", samples[0].Attributes["status"])
}

func TestInstrumenterCallPassesValueThrough(t *testing.T) {
	tracker := NewTracker()
	in := NewInstrumenter(tracker, "vector")

	got, err := Call(in, "search", func() ([]string, error) {
		return []string{"a", "b"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	samples := tracker.ListAll()
	require.Len(t, samples, 1)
	assert.Equal(t, "vector", samples[0].Subsystem)
	assert.Equal(t, "search", samples[0].Operation)
}

func TestInstrumenterCallPropagatesError(t *testing.T) {
	tracker := NewTracker()
	in := NewInstrumenter(tracker, "vector")

	got, err := Call(in, "search", func() (int, error) {
		return 42, errBoom
	})
	require.ErrorIs(t, err, errBoom)

	// The wrapped return value comes back untouched even on failure.
	assert.Equal(t, 42, got)
	assert.Empty(t, tracker.ListAll())
}

func TestInstrumenterForwardsToRecorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := NewMockRecorder(ctrl)
	rec.EXPECT().
		Record("columnar", "analytics_query", gomock.Any(), gomock.Nil()).
		Times(1)

	in := NewInstrumenter(rec, "columnar")

	err := in.Do("analytics_query", func() error { return nil })
	require.NoError(t, err)
}
