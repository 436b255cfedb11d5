package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Matt444/GameStore--backend/internal/middleware"
	"github.com/Matt444/GameStore--backend/internal/model"
)

// RegisterAdmin registers the management surface. Every route requires
// a valid JWT with the admin role.
func RegisterAdmin(e *echo.Echo, h Handlers, jwtSecret string) {
	g := e.Group(
		"",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	// ---- Reference tables ----
	g.POST("/categories", h.Categories.Create)
	g.PUT("/categories/:id", h.Categories.Update)
	g.DELETE("/categories/:id", h.Categories.Delete)

	g.POST("/platforms", h.Platforms.Create)
	g.PUT("/platforms/:id", h.Platforms.Update)
	g.DELETE("/platforms/:id", h.Platforms.Delete)

	// ---- Catalog ----
	g.POST("/games", h.Games.Create)
	g.PATCH("/games/:id", h.Games.Update)
	g.DELETE("/games/:id", h.Games.Delete)

	// ---- License keys ----
	g.GET("/keys", h.Keys.List)
	g.POST("/keys", h.Keys.Create)
	g.DELETE("/keys/:id", h.Keys.Delete)

	// ---- Accounts ----
	g.GET("/users", h.Users.List)
	g.POST("/users", h.Users.Create)
	g.PATCH("/users/:id", h.Users.Update)
	g.DELETE("/users/:id", h.Users.Delete)

	// ---- Orders ----
	g.GET("/orders", h.Orders.ListAll)
}
