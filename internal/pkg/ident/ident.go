// Package ident generates opaque reservation identifiers.
package ident

import (
	"crypto/rand"
	"math/big"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	fragmentLen  = 13
	fragmentsPer = 2
)

var alphabetLen = big.NewInt(int64(len(alphabet)))

// New returns a new identifier built from two independent random base-36
// fragments. At 26 random characters the practical collision risk is
// negligible for the record counts of a small business.
func New() string {
	buf := make([]byte, 0, fragmentLen*fragmentsPer)
	for range fragmentLen * fragmentsPer {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// crypto/rand only fails when the platform entropy source is
			// broken, which is not recoverable here.
			panic("ident: entropy source unavailable: " + err.Error())
		}
		buf = append(buf, alphabet[n.Int64()])
	}
	return string(buf)
}
