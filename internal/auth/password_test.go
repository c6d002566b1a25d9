package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, VerifyPassword("secret1", hash))
	assert.False(t, VerifyPassword("secret2", hash))
}

func TestHashPassword_SaltUniqueness(t *testing.T) {
	first, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	// fresh salt per call: same input, different digests, both verify
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("secret1", first))
	assert.True(t, VerifyPassword("secret1", second))
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	// a malformed digest verifies false, it never errors out
	assert.False(t, VerifyPassword("secret1", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("secret1", ""))
}
