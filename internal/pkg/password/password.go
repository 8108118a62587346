package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
)

// HashPassword bcrypt-hashes a plaintext password at the default cost.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hash), nil
}

// ComparePassword checks plaintext against a stored bcrypt hash. A mismatch
// returns ErrComparisonFailed; malformed hashes surface bcrypt's own error.
func ComparePassword(hash, plaintext string) error {
	if hash == "" || plaintext == "" {
		return ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}
	return nil
}
