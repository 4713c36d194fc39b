// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrMalformedDigest is returned by Check when the stored digest was not
// produced by Hash. It distinguishes corrupted stored data from a plain
// wrong-password mismatch.
var ErrMalformedDigest = errors.New("malformed password digest")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted one-way digest from a plaintext password.
	// Hashing the same plaintext twice yields different digests.
	Hash(password string) (string, error)

	// Check reports whether the plaintext reproduces the digest. A digest
	// that Hash could not have produced yields ErrMalformedDigest instead
	// of a silent false.
	Check(password, digest string) (bool, error)
}
