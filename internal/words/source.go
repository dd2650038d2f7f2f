package words

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the randomness provider for letter draws.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform int in [0, n). n > 0.
	IntN(n int) int
}

// lockedSource serializes access to a PRNG shared by concurrent callers.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedSource returns a Source safe for concurrent use.
// A zero seed picks one from the current time.
func NewLockedSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
