// Package random provides the randomness abstraction used by the amount
// calculator. The calculator never reads a process-global generator; callers
// hand it a Source, which keeps every draw reproducible under test.
package random

import (
	"math/rand"
	"time"
)

// Source yields uniform random values.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

type mathSource struct {
	rng *rand.Rand
}

func (s mathSource) Float64() float64 {
	return s.rng.Float64()
}

// NewSource returns a Source backed by math/rand with the given seed.
// Identical seeds produce identical draw sequences.
func NewSource(seed int64) Source {
	return mathSource{rng: rand.New(rand.NewSource(seed))}
}

// Default returns a time-seeded Source for normal CLI use.
func Default() Source {
	return NewSource(time.Now().UnixNano())
}
