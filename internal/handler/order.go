package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Matt444/GameStore--backend/internal/queue"
	"github.com/Matt444/GameStore--backend/internal/repository"
	queuepublisher "github.com/Matt444/GameStore--backend/internal/service"
)

// OrderHandler exposes checkout and order history.
type OrderHandler struct {
	Orders *repository.OrderRepo
}

func NewOrderHandler(r *repository.OrderRepo) *OrderHandler {
	return &OrderHandler{Orders: r}
}

// ListAll returns every order in the store, admin only.
func (h *OrderHandler) ListAll(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	orders, err := h.Orders.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, orders)
}

// ListMine returns the authenticated user's orders.
func (h *OrderHandler) ListMine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	orders, err := h.Orders.ListForUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, orders)
}

// Create places an order for the authenticated user. The body is an
// array of {game_id, quantity} positions; every quantity must be at
// least one. Availability problems are client errors because the
// caller asked for more than the store can sell; only a commit failure
// is reported as a server error.
func (h *OrderHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var items []repository.OrderItem
	if err := c.Bind(&items); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order must contain at least one item"})
	}
	for _, it := range items {
		if it.GameID == 0 || it.Quantity < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be at least 1"})
		}
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	rec, err := h.Orders.Create(ctx, uid, items)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound),
			errors.Is(err, repository.ErrInsufficientStock),
			errors.Is(err, repository.ErrInsufficientKeys):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "order failed"})
	}

	// Broker publication is best effort and must not delay or fail the
	// response; the order is already committed.
	go func(rec repository.OrderReceipt) {
		pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pcancel()
		_ = queuepublisher.PublishOrderCreated(pctx, queue.OrderCreatedEvent{
			OrderID:      rec.ID,
			UserID:       uid,
			LineCount:    rec.LineCount,
			DigitalLines: rec.DigitalLines,
			CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		})
	}(rec)

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Transaction was completed successfully!",
		"order_id": rec.ID,
	})
}
