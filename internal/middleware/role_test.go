package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRole(t *testing.T, role any, allowed ...string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, RequireRole(allowed...)(next)(c))
	return rec, called
}

func TestRequireRoleAllows(t *testing.T) {
	rec, called := runRole(t, "admin", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)

	rec, called = runRole(t, "user", "user", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireRoleRejects(t *testing.T) {
	rec, called := runRole(t, "user", "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	rec, called := runRole(t, nil, "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}
