package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matt444/GameStore--backend/internal/config"
)

func TestRegisterRequiresAllFields(t *testing.T) {
	h := NewAuthHandler(config.Config{}, nil)

	for _, body := range []string{
		`{}`,
		`{"username":"bob"}`,
		`{"username":"bob","email":"b@x.io"}`,
		`{"username":"  ","email":"b@x.io","password":"pw"}`,
	} {
		c, rec := postJSON("/auth/register", body)
		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	h := NewAuthHandler(config.Config{}, nil)

	c, rec := postJSON("/auth/login", `{"username":"bob"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
