// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed; changing it only affects newly created hashes
// since the cost is embedded in each hash.
const bcryptCost = 10

// HashPassword returns a bcrypt hash of password with a random salt.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
}

// VerifyPassword verifies password against a stored bcrypt hash.
// The comparison is constant-time inside bcrypt.
func VerifyPassword(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
