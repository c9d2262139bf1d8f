package dice

import (
	"math/rand/v2"
	"sync"
)

type globalSource struct{}

// NewSource returns a Source backed by the automatically seeded math/rand/v2
// generator.
func NewSource() Source {
	return globalSource{}
}

func (globalSource) Intn(n int) int {
	return rand.IntN(n)
}

// seededSource is a deterministic Source. The underlying generator is not
// safe for concurrent use, so access is serialized.
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a deterministic Source: the same seed always yields
// the same sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
