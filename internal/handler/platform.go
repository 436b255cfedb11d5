package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Matt444/GameStore--backend/internal/repository"
)

// PlatformHandler exposes the platforms reference table.
type PlatformHandler struct {
	Platforms *repository.PlatformRepo
}

func NewPlatformHandler(r *repository.PlatformRepo) *PlatformHandler {
	return &PlatformHandler{Platforms: r}
}

// List returns all platforms, public.
func (h *PlatformHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	ps, err := h.Platforms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]namedResp, 0, len(ps))
	for _, p := range ps {
		out = append(out, namedResp{ID: p.ID, Name: p.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// Create inserts a new platform, admin only.
func (h *PlatformHandler) Create(c echo.Context) error {
	var req nameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	id, err := h.Platforms.Create(ctx, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "platform already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create platform failed"})
	}
	return c.JSON(http.StatusCreated, namedResp{ID: id, Name: req.Name})
}

// Update renames a platform, admin only.
func (h *PlatformHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req nameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Platforms.Update(ctx, id, req.Name); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "platform not found"})
		case errors.Is(err, repository.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"error": "platform already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update platform failed"})
	}
	return c.JSON(http.StatusOK, namedResp{ID: id, Name: req.Name})
}

// Delete removes a platform, admin only. A platform still referenced by
// games cannot be removed.
func (h *PlatformHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Platforms.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "platform not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "platform is still in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete platform failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
