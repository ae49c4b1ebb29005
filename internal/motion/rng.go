// internal/motion/rng.go
package motion

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness capability the generators consume. It is injected
// so tests can supply a seeded *rand.Rand and production code can share one
// process-wide source across concurrent callers.
type Rand interface {
	// Intn returns a uniform integer in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// LockedRand is a concurrency-safe Rand backed by a single math/rand source.
// Every call only advances the source, so the lock reduces to atomic
// "get next number" semantics.
type LockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewLockedRand creates a LockedRand from the given seed. A seed of zero
// falls back to the current wall clock.
func NewLockedRand(seed int64) *LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedRand{src: rand.New(rand.NewSource(seed))}
}

// Intn implements Rand.
func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}
