// Package util provides small shared helpers.
package util

import (
	"crypto/rand"
	"math/big"
)

const randomAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns a cryptographically random alphanumeric string of the
// given length. Used for stored image name suffixes and the throwaway
// passwords of accounts created implicitly at checkout.
func RandomString(length int) string {
	out := make([]byte, length)
	max := big.NewInt(int64(len(randomAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform's entropy source is broken.
			panic(err)
		}
		out[i] = randomAlphabet[n.Int64()]
	}

	return string(out)
}
