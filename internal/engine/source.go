package engine

import (
	"math/rand"
	"time"
)

// Source supplies the randomness used for tile spawns.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSource returns a seeded source. A zero seed uses the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
