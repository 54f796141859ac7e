package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("clinica-2468")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("clinica-2468", hash))
	assert.False(t, CheckPasswordHash("clinica-2469", hash))
}

func TestSessionJWT(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", 1)
	require.NoError(t, err)

	t.Run("valid token returns session id", func(t *testing.T) {
		sessionID, err := ParseSessionJWT(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "session-1", sessionID)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		_, err := ParseSessionJWT(token, "other")
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseSessionJWT("not-a-token", "secret")
		assert.Error(t, err)
	})
}
