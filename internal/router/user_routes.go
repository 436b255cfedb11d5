package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Matt444/GameStore--backend/internal/middleware"
	"github.com/Matt444/GameStore--backend/internal/model"
)

// RegisterUser registers the endpoints any authenticated account may
// call on its own behalf: placing orders, reading its own order history
// and updating its own profile.
func RegisterUser(e *echo.Echo, h Handlers, jwtSecret string) {
	g := e.Group(
		"",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleUser, model.RoleAdmin),
	)

	g.GET("/orders/loggeduser", h.Orders.ListMine)
	g.POST("/orders/loggeduser", h.Orders.Create)
	g.PATCH("/users/loggeduser", h.Users.UpdateSelf)
}
