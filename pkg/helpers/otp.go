package helpers

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenOTPCode generates a random 6-digit OTP code in the range
// "100000".."999999". Codes are independent per call; scoping to an
// account plus a short expiry is what makes them safe to collide.
func GenOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
