// Package randsrc provides seedable random sources for chain sampling.
//
// Every chain owns its own source so that concurrent chains never interleave
// draws. A source shared across goroutines must be wrapped with Locked.
package randsrc

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// #region constructors

// New returns a time-seeded source for non-reproducible runs. This is not a
// cryptographically secure source; sampling has no need for one.
func New() rand.Source {
	return Seeded(uint64(time.Now().UnixNano()))
}

// Seeded returns a deterministic source. The same seed always yields the
// same draw sequence.
func Seeded(seed uint64) rand.Source {
	source := prng.NewMT19937()
	source.Seed(seed)
	return source
}

// #endregion constructors

// #region locked

// Locked wraps a source with a mutex so it can back multiple chains at once.
func Locked(src rand.Source) rand.Source {
	return &lockedSource{src: src}
}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	n := s.src.Uint64()
	s.mu.Unlock()
	return n
}

func (s *lockedSource) Seed(seed uint64) {
	s.mu.Lock()
	s.src.Seed(seed)
	s.mu.Unlock()
}

// #endregion locked
