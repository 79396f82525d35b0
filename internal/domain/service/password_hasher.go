// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate rules that don't belong to a single entity.
package service

// PasswordHasher is the narrow capability interface for password hashing and
// verification. It abstracts the underlying algorithm (bcrypt) and lets tests
// substitute a double without losing type safety.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
