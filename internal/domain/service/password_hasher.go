// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for credential hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext credential. Each call
	// incorporates a fresh salt, so hashing the same plaintext twice yields
	// different stored hashes.
	Hash(password string) (string, error)

	// Check compares a plaintext credential with a stored hash. A malformed
	// hash reports false rather than raising.
	Check(password, hash string) bool
}
