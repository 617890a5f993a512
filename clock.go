package faker

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Random draws uniformly distributed integers.
type Random interface {
	// Int64Range returns, as an int64, a pseudo-random number in [low,high].
	// Both bounds are inclusive and high must not be lower than low.
	Int64Range(low, high int64) int64
}

// SystemClock is a Clock backed by the system wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock that always returns T.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return c.T
}

type mathRandom struct {
	mutex sync.Mutex
	rand  *rand.Rand
}

// NewRandom returns a Random seeded with the passed value. Sources with equal
// seeds produce equal sequences. It is safe for concurrent use.
func NewRandom(seed int64) Random {
	return &mathRandom{rand: rand.New(rand.NewSource(seed))}
}

func newRandom() Random {
	return NewRandom(time.Now().UnixNano())
}

func (r *mathRandom) Int64Range(low, high int64) int64 {
	if high <= low {
		return low
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	n := uint64(high) - uint64(low)
	if n >= math.MaxInt64 {
		// Int63n cannot express n+1 here, so fall back to rejection sampling
		// over the full 64 bit range.
		for {
			v := r.rand.Uint64()
			if v <= n {
				return int64(uint64(low) + v)
			}
		}
	}
	return low + r.rand.Int63n(int64(n)+1)
}
