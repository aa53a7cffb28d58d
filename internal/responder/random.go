package responder

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random is the source of randomness for fallback answers.
type Random interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
}

type lockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRandom returns a deterministic Random that is safe for
// concurrent use.
func NewSeededRandom(seed uint64) Random {
	return &lockedRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeededRandom seeds from the wall clock.
func NewTimeSeededRandom() Random {
	return NewSeededRandom(uint64(time.Now().UnixNano()))
}

func (l *lockedRandom) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
