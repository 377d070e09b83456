package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedderDeterministic(t *testing.T) {
	e := NewEmbedder(64)

	a := e.Embed("wireless noise cancelling headphones")
	b := e.Embed("wireless noise cancelling headphones")

	assert.Equal(t, a, b)
}

func TestEmbedderDimensions(t *testing.T) {
	tests := []struct {
		name string
		dims int
		want int
	}{
		{name: "explicit size", dims: 64, want: 64},
		{name: "zero falls back to default", dims: 0, want: defaultDimensions},
		{name: "negative falls back to default", dims: -3, want: defaultDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEmbedder(tt.dims)
			assert.Equal(t, tt.want, e.Dimensions())
			assert.Len(t, e.Embed("some text"), tt.want)
		})
	}
}

func TestEmbedderNormalized(t *testing.T) {
	e := NewEmbedder(128)
	vec := e.Embed("the quick brown fox jumps over the lazy dog")

	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}

	assert.InDelta(t, 1.0, math.Sqrt(sum), 0.001)
}

func TestEmbedderEmptyText(t *testing.T) {
	e := NewEmbedder(32)
	vec := e.Embed("")

	require.Len(t, vec, 32)

	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestEmbedderSimilarTextCloserThanUnrelated(t *testing.T) {
	e := NewEmbedder(256)

	query := e.Embed("bluetooth wireless headphones")
	near := e.Embed("wireless headphones with bluetooth")
	far := e.Embed("stainless steel kitchen knife set")

	assert.Greater(t, cosine(query, near), cosine(query, far))
}

func TestEmbedderCaseInsensitive(t *testing.T) {
	e := NewEmbedder(64)

	assert.Equal(t, e.Embed("Wireless HEADPHONES"), e.Embed("wireless headphones"))
}

func cosine(a, b []float32) float64 {
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}

	return dot
}
