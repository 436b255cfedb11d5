package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewSalt(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)

	assert.Len(t, a, 32) // 16 bytes hex-encoded
	assert.NotEqual(t, a, b)
}

func TestPasswordRoundTrip(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)

	hash, err := HashPassword("hunter2", salt, bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, salt, "hunter2"))
	assert.False(t, VerifyPassword(hash, salt, "hunter3"))

	// the salt is part of the hashed input, so it must match too
	other, err := NewSalt()
	require.NoError(t, err)
	assert.False(t, VerifyPassword(hash, other, "hunter2"))
}
