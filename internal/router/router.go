// Package router wires the HTTP surface: which paths exist, which
// middleware guards them and which handler serves them.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Matt444/GameStore--backend/internal/handler"
)

// Handlers bundles every handler the API registers.
type Handlers struct {
	Auth       *handler.AuthHandler
	Categories *handler.CategoryHandler
	Platforms  *handler.PlatformHandler
	Games      *handler.GameHandler
	Keys       *handler.KeyHandler
	Users      *handler.UserHandler
	Orders     *handler.OrderHandler
}

// RegisterPublic registers the unauthenticated surface: health check,
// catalog browsing and the auth endpoints. The cache middleware is
// applied to the browse GETs only; it is a pass-through when caching is
// disabled.
func RegisterPublic(e *echo.Echo, h Handlers, cache echo.MiddlewareFunc) {
	e.GET("/", handler.Health)

	e.GET("/categories", h.Categories.List, cache)
	e.GET("/platforms", h.Platforms.List, cache)
	e.GET("/games", h.Games.List, cache)
	e.POST("/games/search", h.Games.Search)

	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)
}
