package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	ok, rehash := VerifyPassword(hash, "secret1")
	assert.True(t, ok)
	assert.False(t, rehash)

	ok, _ = VerifyPassword(hash, "wrong")
	assert.False(t, ok)
}

func TestVerifyPassword_LegacyPlaintext(t *testing.T) {
	ok, rehash := VerifyPassword("secret1", "secret1")
	assert.True(t, ok)
	assert.True(t, rehash)

	ok, rehash = VerifyPassword("secret1", "secret2")
	assert.False(t, ok)
	assert.False(t, rehash)
}

func TestVerifyPassword_Empty(t *testing.T) {
	ok, _ := VerifyPassword("", "")
	assert.False(t, ok)
}
