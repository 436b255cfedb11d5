package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameCreateValidation(t *testing.T) {
	h := NewGameHandler(nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"price":10,"platform_id":1,"categories_id":[1]}`},
		{"negative price", `{"name":"Doom","price":-1,"platform_id":1,"categories_id":[1]}`},
		{"negative quantity", `{"name":"Doom","price":10,"quantity":-5,"platform_id":1,"categories_id":[1]}`},
		{"missing platform", `{"name":"Doom","price":10,"categories_id":[1]}`},
		{"no categories", `{"name":"Doom","price":10,"platform_id":1,"categories_id":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := postJSON("/games", tc.body)
			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGameUpdateRejectsEmptyCategorySet(t *testing.T) {
	h := NewGameHandler(nil)
	c, rec := postJSON("/games/1", `{"categories_id":[]}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGameUpdateRejectsBadID(t *testing.T) {
	h := NewGameHandler(nil)
	c, rec := postJSON("/games/abc", `{"name":"Doom"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
