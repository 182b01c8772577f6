package password

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt digest for a plaintext password.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify safely compares a stored digest against a plaintext candidate.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// EsDigest reports whether the value already is a bcrypt digest. Assignment
// paths use this guard so that re-saving a record never re-hashes a digest.
func EsDigest(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
