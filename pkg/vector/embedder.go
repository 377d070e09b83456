// Package vector pkg/vector/embedder.go implements a deterministic
// feature-hashing embedder. It stands in for a learned embedding model so
// the playground has no external model dependency; similar wording still
// lands near itself in the vector space.
package vector

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const defaultDimensions = 256

// Embedder turns text into fixed-size vectors by hashing tokens into
// buckets. The same text always produces the same vector.
type Embedder struct {
	dims int
}

// NewEmbedder creates an embedder with the given dimensionality; values
// below 1 fall back to the default.
func NewEmbedder(dims int) *Embedder {
	if dims < 1 {
		dims = defaultDimensions
	}

	return &Embedder{dims: dims}
}

// Dimensions returns the vector size this embedder produces.
func (e *Embedder) Dimensions() int {
	return e.dims
}

// Embed converts text into an L2-normalized vector. Empty or
// non-alphanumeric text yields the zero vector.
func (e *Embedder) Embed(text string) []float32 {
	vec := make([]float32, e.dims)

	for _, tok := range tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		sum := h.Sum32()

		idx := int(sum % uint32(e.dims)) //nolint:gosec // dims is a small positive int

		// One hash bit decides the sign so collisions partially cancel.
		if sum&0x80000000 != 0 {
			vec[idx]--
		} else {
			vec[idx]++
		}
	}

	return normalize(vec)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalize(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}

	if sum == 0 {
		return vec
	}

	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}

	return vec
}
