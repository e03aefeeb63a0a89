package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var otpMax = big.NewInt(1000000)

// generateOTP returns a uniformly random 6-digit numeric code, zero-padded.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %v", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
