// Package handler defines the HTTP handlers of the store API. Handlers
// bind request bodies, run repository calls under a bounded context and
// translate the repository error taxonomy into HTTP status codes.
package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// reqContext derives a context with the standard database timeout from
// the incoming request.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// getUserID extracts the authenticated user's ID from the context. The
// JWT middleware stores the raw sub claim, which arrives as float64
// after JSON decoding of the token.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// pagingParams reads the optional limit/offset query parameters.
// Missing or unparsable values fall back to zero, which the repository
// treats as "no limit" and "no offset".
func pagingParams(c echo.Context) (limit, offset int64) {
	limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	offset, _ = strconv.ParseInt(c.QueryParam("offset"), 10, 64)
	return limit, offset
}
