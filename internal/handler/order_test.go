package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postJSON builds an echo context for a JSON POST body.
func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOrderCreateRequiresAuth(t *testing.T) {
	h := NewOrderHandler(nil)
	c, rec := postJSON("/orders/loggeduser", `[{"game_id":1,"quantity":1}]`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderCreateRejectsEmptyCart(t *testing.T) {
	h := NewOrderHandler(nil)
	c, rec := postJSON("/orders/loggeduser", `[]`)
	c.Set("user_id", float64(7))

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderCreateRejectsZeroQuantity(t *testing.T) {
	h := NewOrderHandler(nil)
	c, rec := postJSON("/orders/loggeduser", `[{"game_id":1,"quantity":0}]`)
	c.Set("user_id", float64(7))

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "quantity")
}

func TestOrderCreateRejectsNegativeQuantity(t *testing.T) {
	h := NewOrderHandler(nil)
	c, rec := postJSON("/orders/loggeduser", `[{"game_id":1,"quantity":-2}]`)
	c.Set("user_id", float64(7))

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderCreateRejectsMalformedBody(t *testing.T) {
	h := NewOrderHandler(nil)
	c, rec := postJSON("/orders/loggeduser", `{"game_id":1}`)
	c.Set("user_id", float64(7))

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
