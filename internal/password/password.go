// Package password wraps bcrypt hashing for stored credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Cost matches the salt rounds used for all existing password hashes.
const Cost = 12

// Hash derives a salted bcrypt hash from a plaintext password. Equal
// passwords produce different hashes across calls; the salt is embedded in
// the output.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash. A malformed
// stored hash returns false rather than an error, so callers cannot tell a
// corrupted record apart from a wrong password.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
