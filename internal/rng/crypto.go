package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto draws from crypto/rand, so a live deck order cannot be predicted from earlier hands
type Crypto struct{}

// Intn returns a uniform number in [0, n)
// It panics if n <= 0 or the system entropy source fails; a table cannot deal without either.
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: invalid argument to Intn: %d", n))
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Errorf("rng: could not read from crypto/rand: %w", err))
	}

	return int(b.Int64())
}
