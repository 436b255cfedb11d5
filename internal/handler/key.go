package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Matt444/GameStore--backend/internal/repository"
)

// KeyHandler exposes license key administration.
type KeyHandler struct {
	Keys *repository.KeyRepo
}

func NewKeyHandler(r *repository.KeyRepo) *KeyHandler {
	return &KeyHandler{Keys: r}
}

type createKeyReq struct {
	GameID uint64 `json:"game_id"`
	GKey   string `json:"gkey"`
}

// List returns every license key with its owning game, admin only.
func (h *KeyHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	keys, err := h.Keys.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, keys)
}

// Create registers a license key for a game, admin only.
func (h *KeyHandler) Create(c echo.Context) error {
	var req createKeyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.GKey = strings.TrimSpace(req.GKey)
	if req.GameID == 0 || req.GKey == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "game_id/gkey required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	id, err := h.Keys.Create(ctx, req.GameID, req.GKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create key failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Delete removes an unused license key, admin only. A key that has been
// sold stays on record forever and cannot be deleted.
func (h *KeyHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Keys.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "key not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "key has been sold"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete key failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
