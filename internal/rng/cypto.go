package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto draws numbers from crypto/rand
// Shuffle seeds and generated secrets come from here so players cannot predict them.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// Like math/rand, it panics if n <= 0
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Errorf("could not read random number: %w", err))
	}

	return int(b.Int64())
}
