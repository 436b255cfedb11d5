package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// NewSalt returns a random 16-byte hex salt. The salt is stored next to
// the hash so the users table keeps the (hash, salt) pair the rest of
// the system expects.
func NewSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword returns the bcrypt hash of the salted password using the
// given cost.
func HashPassword(plain, salt string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(salt+plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares the stored hash against the salted
// plain password.
func VerifyPassword(hash, salt, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(salt+plain)) == nil
}
