// Package service declares the stateless collaborators the use cases depend on.
package service

// PasswordHasher turns account secrets into one-way digests and verifies
// presented secrets against a stored digest.
type PasswordHasher interface {
	// Hash returns a salted digest of secret. Two calls with the same
	// secret produce different digests.
	Hash(secret string) (string, error)

	// Check reports whether secret matches digest. A malformed digest is a
	// mismatch, never an error.
	Check(secret, digest string) bool
}
