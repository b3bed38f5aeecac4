package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewOTPCode returns a uniformly random six-digit code in
// [100000, 999999], so codes never carry a leading zero.
func NewOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", 100000+n.Int64()), nil
}
