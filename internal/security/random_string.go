package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// tempPasswordAlphabet avoids look-alike characters since the value is
// read aloud or copied from a terminal.
const tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const tempPasswordLength = 16

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// TempPassword generates a one-time password for administrative resets.
// The result always satisfies the signup password policy so the user
// can log in with it before being forced to choose their own.
func TempPassword() (string, error) {
	for {
		candidate, err := RandomString(tempPasswordLength, tempPasswordAlphabet)
		if err != nil {
			return "", err
		}
		if containsLetterAndDigit(candidate) {
			return candidate, nil
		}
	}
}

func containsLetterAndDigit(value string) bool {
	var hasLetter, hasDigit bool
	for _, char := range value {
		switch {
		case char >= '0' && char <= '9':
			hasDigit = true
		case (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z'):
			hasLetter = true
		}
	}
	return hasLetter && hasDigit
}
