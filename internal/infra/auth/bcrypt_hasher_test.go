package auth

import (
	"testing"

	"cookbook/config"
	"cookbook/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	password := "correct horse battery staple"
	digest, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, password, digest)

	match, err := hasher.Check(password, digest)
	assert.NoError(t, err)
	assert.True(t, match)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	password := "same password twice"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// bcrypt embeds a random salt, so repeated hashes differ.
	assert.NotEqual(t, first, second)

	for _, digest := range []string{first, second} {
		match, err := hasher.Check(password, digest)
		assert.NoError(t, err)
		assert.True(t, match)
	}
}

func TestBcryptHasher_CheckWrongPassword(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	digest, err := hasher.Hash("the real password")
	assert.NoError(t, err)

	match, err := hasher.Check("not the password", digest)
	assert.NoError(t, err)
	assert.False(t, match)

	match, err = hasher.Check("", digest)
	assert.NoError(t, err)
	assert.False(t, match)
}

func TestBcryptHasher_CheckMalformedDigest(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	for _, digest := range []string{
		"",
		"not a bcrypt digest",
		"$1$legacy$md5digest",
	} {
		match, err := hasher.Check("any password", digest)
		assert.False(t, match)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrMalformedDigest), "digest %q should report ErrMalformedDigest", digest)
	}
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasher(testHasherConfig(customCost))

	digest, err := hasher.Hash("cost check")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(99))

	digest, err := hasher.Hash("fallback cost")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
