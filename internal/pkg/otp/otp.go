package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("otp hashing failed")
	ErrMismatch        = errors.New("otp mismatch")
	ErrInvalidCode     = errors.New("invalid otp code")
	ErrGenerationError = errors.New("otp generation failed")
)

const (
	CodeLength  = 6
	DefaultCost = bcrypt.DefaultCost
)

var codeSpace = big.NewInt(1_000_000)

// Generate returns a zero-padded numeric code of CodeLength digits.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", errors.Join(ErrGenerationError, err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}

func Hash(code string) (string, error) {
	if !valid(code) {
		return "", ErrInvalidCode
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashedCode, code string) error {
	if hashedCode == "" || !valid(code) {
		return ErrInvalidCode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}

func valid(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
