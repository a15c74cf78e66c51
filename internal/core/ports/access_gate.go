package ports

import (
	"medmarket/internal/core/domain/model/auth"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	// Returns an error when they do not match.
	Compare(hash, password string) error
}

// AccessGate is the single place request credentials become an identity.
// Every authenticated request passes through it exactly once; the resulting
// Actor is then threaded explicitly through commands and queries, which
// never re-derive identity themselves.
type AccessGate interface {
	// IssueToken mints a signed credential for the actor.
	IssueToken(actor auth.Actor) (string, error)

	// Authenticate verifies a credential and produces the Actor it carries.
	// Invalid, expired, or malformed credentials fail with a forbidden error.
	Authenticate(token string) (auth.Actor, error)
}
