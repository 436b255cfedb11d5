package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken(t *testing.T) {
	const secret = "test-secret"
	issued, err := NewAccessToken(secret, 42, "admin", 60)
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)

	tok, err := jwt.Parse(issued.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "admin", claims["role"])

	// the reported expiry matches the exp claim within clock skew
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), issued.Exp, 5*time.Second)
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	issued, err := NewAccessToken("right-secret", 1, "user", 10)
	require.NoError(t, err)

	_, err = jwt.Parse(issued.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
