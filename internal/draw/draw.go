// Package draw wraps the shared seeded random stream with the primitive
// draws every generator uses. All helpers consume the passed-in *rand.Rand;
// none hold state, so draw order stays fully determined by call order.
package draw

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// DateLayout is the date format used across all tables.
const DateLayout = "2006-01-02"

// Between returns a uniform integer in [lo, hi] inclusive.
func Between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Pick returns a uniform element of a non-empty slice.
func Pick[T any](rng *rand.Rand, s []T) T {
	return s[rng.Intn(len(s))]
}

// Bernoulli returns true with probability p.
func Bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Money returns a uniform amount in [lo, hi) rounded to cents.
func Money(rng *rand.Rand, lo, hi float64) float64 {
	return Round2(lo + rng.Float64()*(hi-lo))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DateIn returns a date uniformly offset 0..days from start.
func DateIn(rng *rand.Rand, start time.Time, days int) time.Time {
	return start.AddDate(0, 0, rng.Intn(days+1))
}

// NPI returns a 10-digit provider identifier.
func NPI(rng *rand.Rand) string {
	return fmt.Sprintf("%d", 1000000000+rng.Int63n(9000000000))
}
