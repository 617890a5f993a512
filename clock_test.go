package faker

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIfSystemClockReturnsCurrentTime(t *testing.T) {
	before := time.Now()
	now := SystemClock{}.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestIfFixedClockAlwaysReturnsTheSameTime(t *testing.T) {
	fixed := time.Date(2016, 9, 26, 10, 30, 45, 0, time.FixedZone("", 3600))
	clock := FixedClock{T: fixed}

	assert.True(t, fixed.Equal(clock.Now()))
	assert.True(t, fixed.Equal(clock.Now()))
}

func TestIfRandomReturnsValuesInInclusiveRange(t *testing.T) {
	testCases := []struct {
		name      string
		low, high int64
	}{
		{"zero width at zero", 0, 0},
		{"zero width", 42, 42},
		{"single step", 0, 1},
		{"negative bounds", -10, -5},
		{"full range", math.MinInt64, math.MaxInt64},
		{"wider than int63", -1, math.MaxInt64},
	}
	r := NewRandom(0)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				v := r.Int64Range(tc.low, tc.high)
				assert.True(t, v >= tc.low && v <= tc.high, "%d not in [%d,%d]", v, tc.low, tc.high)
			}
		})
	}
}

func TestIfRandomReachesBothBounds(t *testing.T) {
	r := NewRandom(1)
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		seen[r.Int64Range(0, 1)] = true
	}

	assert.True(t, seen[0])
	assert.True(t, seen[1])
}

func TestIfRandomIsReproducibleWhenStaticSeed(t *testing.T) {
	r1 := NewRandom(7)
	r2 := NewRandom(7)

	for i := 0; i < 10; i++ {
		assert.Equal(t, r1.Int64Range(0, 1000), r2.Int64Range(0, 1000))
	}
}

func TestIfRandomIsSafeForConcurrentUse(t *testing.T) {
	r := NewRandom(3)
	dateTime := NewDateTime(FixedClock{T: time.Date(2016, 9, 26, 10, 30, 45, 0, time.UTC)}, r)
	from := time.Date(2006, 9, 26, 10, 30, 45, 0, time.UTC)
	to := time.Date(2026, 9, 26, 10, 30, 45, 0, time.UTC)

	t.Run("group", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			t.Run(fmt.Sprintf("worker=%d", i), func(t *testing.T) {
				t.Parallel()
				for j := 0; j < 1000; j++ {
					v := r.Int64Range(-5, 5)
					assert.True(t, v >= -5 && v <= 5)

					result, err := dateTime.Between(from, to)
					assert.NoError(t, err)
					assert.False(t, result.Before(from) || result.After(to))
				}
			})
		}
	})
}
