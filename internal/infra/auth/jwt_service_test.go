package auth

import (
	"strings"
	"testing"
	"time"

	"cookbook/config"
	"cookbook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-secret", time.Minute))
	require.NoError(t, err)

	subjectID := uuid.New()
	token, err := svc.Issue(subjectID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testTokenConfig("", time.Minute))
	assert.Error(t, err)
}

func TestJWTService_VerifyGarbage(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-secret", time.Minute))
	require.NoError(t, err)

	for _, token := range []string{
		"",
		"not a token",
		"only.two",
	} {
		_, err := svc.Verify(token)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrTokenMalformed), "token %q should report ErrTokenMalformed", token)
	}
}

func TestJWTService_VerifyTampered(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-secret", time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Flip a character in the signature segment so it no longer matches the payload.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTService_VerifyTamperedPayload(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-secret", time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flipping any single payload character must report a signature failure,
	// whether or not the mangled claims still decode as JSON.
	for i := range parts[1] {
		payload := []byte(parts[1])
		if payload[i] == 'A' {
			payload[i] = 'B'
		} else {
			payload[i] = 'A'
		}
		tampered := parts[0] + "." + string(payload) + "." + parts[2]

		_, err := svc.Verify(tampered)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid), "payload flip at %d should report ErrTokenSignatureInvalid", i)
	}
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testTokenConfig("issuer-secret", time.Minute))
	require.NoError(t, err)
	verifier, err := NewJWTService(testTokenConfig("other-secret", time.Minute))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTService_VerifyExpired(t *testing.T) {
	// Negative TTL issues a token that is already expired.
	svc, err := NewJWTService(testTokenConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}
