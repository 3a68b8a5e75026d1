package utils

import (
	"crypto/rand"
	"io"
	"math/big"
	"strconv"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

// NewRecoveryCode draws a uniformly random 6-digit code in
// [100000, 999999] from r. A nil r falls back to crypto/rand.
func NewRecoveryCode(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	n, err := rand.Int(r, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
