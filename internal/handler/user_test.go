package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matt444/GameStore--backend/internal/config"
)

func TestUpdateSelfRejectsRoleChange(t *testing.T) {
	h := NewUserHandler(config.Config{}, nil)
	c, rec := postJSON("/users/loggeduser", `{"role":"admin"}`)
	c.Set("user_id", float64(7))

	require.NoError(t, h.UpdateSelf(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateSelfRequiresAuth(t *testing.T) {
	h := NewUserHandler(config.Config{}, nil)
	c, rec := postJSON("/users/loggeduser", `{"name":"bob"}`)

	require.NoError(t, h.UpdateSelf(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminCreateUserValidatesRole(t *testing.T) {
	h := NewUserHandler(config.Config{}, nil)
	c, rec := postJSON("/users", `{"username":"bob","email":"b@x.io","password":"pw","role":"owner"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "role")
}
