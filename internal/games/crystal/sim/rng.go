package sim

import "math/rand"

// Source yields uniform samples in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float32() float32
}

// NewSource returns a deterministic Source for seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
