package otpguard

import (
	"crypto/rand"
	"math/big"
)

// CryptoRand is the production Rand backed by crypto/rand, so issued codes
// are drawn from a cryptographically secure source.
type CryptoRand struct{}

// NewCryptoRand returns a CryptoRand.
func NewCryptoRand() *CryptoRand {
	return &CryptoRand{}
}

// Intn returns a uniform random value in [0, n).
func (*CryptoRand) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// nothing sensible can be issued at that point.
		panic(err)
	}
	return int(v.Int64())
}
