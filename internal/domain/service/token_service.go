package service

import (
	"errors"

	"github.com/google/uuid"
)

// Verification failures. The delivery layer must collapse all three into a
// generic unauthenticated response; only server-side logs may distinguish them.
var (
	// ErrTokenMalformed means the input does not parse as a token at all.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrTokenSignatureInvalid means the payload or signature was tampered
	// with or signed with a different secret.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")

	// ErrTokenExpired means the token was valid but its TTL has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims carries the verified content of a bearer token.
type Claims struct {
	SubjectID uuid.UUID // The user the token was issued to.
}

// TokenService defines the interface for issuing and verifying signed,
// self-contained bearer tokens. Implementations are stateless; the only
// process-wide state is the signing secret fixed at startup.
type TokenService interface {
	// Issue produces a signed token embedding the subject id and an
	// expiration of now plus the configured TTL.
	Issue(subjectID uuid.UUID) (string, error)

	// Verify checks the signature and expiration and returns the embedded
	// claims. Failures are one of ErrTokenMalformed,
	// ErrTokenSignatureInvalid or ErrTokenExpired.
	Verify(token string) (*Claims, error)
}
