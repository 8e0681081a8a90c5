// Package randcode generates opaque alphanumeric suffixes for redemption
// codes and receipt ids. True randomness by design: codes should differ on
// every call even for the same user.
package randcode

import "math/rand/v2"

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Generator struct{}

func New() Generator {
	return Generator{}
}

func (Generator) Suffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}
