package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Matt444/GameStore--backend/internal/repository"
)

// GameHandler exposes the catalog: public browsing and search plus the
// admin mutations.
type GameHandler struct {
	Games *repository.GameRepo
}

func NewGameHandler(r *repository.GameRepo) *GameHandler {
	return &GameHandler{Games: r}
}

// searchReq mirrors the composite search filters. Every field is
// optional; empty slices add no condition.
type searchReq struct {
	Name        string   `json:"name"`
	IsDigital   []bool   `json:"is_digital"`
	AgeCats     []string `json:"age_categories"`
	PlatformIDs []uint64 `json:"platforms_id"`
	CategoryIDs []uint64 `json:"categories_id"`
}

// List returns catalog entries whose name contains the q query
// parameter, public. Supports limit/offset paging.
func (h *GameHandler) List(c echo.Context) error {
	limit, offset := pagingParams(c)

	ctx, cancel := reqContext(c)
	defer cancel()

	games, err := h.Games.List(ctx, c.QueryParam("q"), limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, games)
}

// Search returns catalog entries matching every provided filter,
// public. Paging comes from the same limit/offset query parameters as
// List.
func (h *GameHandler) Search(c echo.Context) error {
	var req searchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	limit, offset := pagingParams(c)

	ctx, cancel := reqContext(c)
	defer cancel()

	games, err := h.Games.Search(ctx, repository.GameSearch{
		Name:        req.Name,
		IsDigital:   req.IsDigital,
		AgeCats:     req.AgeCats,
		PlatformIDs: req.PlatformIDs,
		CategoryIDs: req.CategoryIDs,
	}, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, games)
}

// Create inserts a game with its category links, admin only. Games are
// only listed through their category links, so at least one category is
// required.
func (h *GameHandler) Create(c echo.Context) error {
	var req repository.NewGame
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	switch {
	case req.Name == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	case req.Price < 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	case req.Quantity < 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must not be negative"})
	case req.PlatformID == 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "platform_id required"})
	case len(req.Categories) == 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one category required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	id, err := h.Games.Create(ctx, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "platform or category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create game failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Update applies a partial game update, admin only. A provided
// categories_id replaces the game's whole category link set.
func (h *GameHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req repository.GameUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Categories != nil && len(*req.Categories) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one category required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Games.Update(ctx, id, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game, platform or category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update game failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "game updated"})
}

// Delete removes a game with its links and keys, admin only. Games that
// appear in an order stay on record and cannot be deleted.
func (h *GameHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Games.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "game has been sold"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete game failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
