package random

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Code returns a random alphanumeric string of the given length.
// Booking codes are 12 characters; the space is large but collisions are
// still possible, so callers rely on the persistence uniqueness constraint
// and retry.
func Code(length int) string {
	out := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out)
}

// Digits returns a numeric one-time code, used for email OTPs.
func Digits(length int) string {
	out := make([]byte, length)
	max := big.NewInt(10)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		out[i] = byte('0' + n.Int64())
	}
	return string(out)
}
