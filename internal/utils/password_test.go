package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, CheckPasswordHash("s3cret-pass", hash))
	require.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestSecureTokenShape(t *testing.T) {
	a := SecureToken(64)
	b := SecureToken(64)
	require.Len(t, a, 64)
	require.NotEqual(t, a, b)
}

func TestHashTokenIsDeterministicAndOpaque(t *testing.T) {
	h1 := HashToken("refresh-token-value")
	h2 := HashToken("refresh-token-value")
	require.Equal(t, h1, h2)
	require.NotEqual(t, "refresh-token-value", h1)
	require.NotEqual(t, h1, HashToken("other-token"))
}
