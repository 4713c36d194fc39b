// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cookbook/config"
	"cookbook/internal/domain/service"
	"cookbook/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing access tokens. Fixed at startup.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	ttl := 15 * time.Minute
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL != 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token carrying the subject id and an expiration of
// now plus the configured TTL.
func (s *jwtService) Issue(subjectID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token's signature and expiration and returns the embedded
// subject id. Failures map onto the three service sentinels; input that does
// not even parse as a token is reported as malformed, never as a bad signature.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, translateJWTError(tokenString, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, errors.Wrap(service.ErrTokenMalformed, "missing subject claim")
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "subject is not a valid id")
	}

	return &service.Claims{SubjectID: subjectID}, nil
}

// translateJWTError maps jwt/v5 parse errors onto the domain sentinels.
// Expiry is checked before the signature by jwt/v5 option defaults, so the
// expired case is matched first. jwt/v5 decodes the claims before verifying
// the signature, so a tampered payload on a structurally sound token can
// surface as a malformed error; that case is reported as a signature failure
// and malformed stays reserved for input that is not shaped like a token.
func translateJWTError(tokenString string, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenMalformed):
		if isTokenShaped(tokenString) {
			return errors.Wrap(service.ErrTokenSignatureInvalid, err.Error())
		}

		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	default:
		// Signature mismatch or any other verification failure.
		return errors.Wrap(service.ErrTokenSignatureInvalid, err.Error())
	}
}

// isTokenShaped reports whether the input has the structure of a signed
// token: three non-empty base64url segments.
func isTokenShaped(tokenString string) bool {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return false
	}

	for _, part := range parts {
		if part == "" {
			return false
		}
		if _, err := base64.RawURLEncoding.DecodeString(part); err != nil {
			return false
		}
	}

	return true
}
