package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lojaviva/commerce-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Health handles GET /, confirming the API is up.
func (h *OrderHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, detailResponse{Detail: "Order API has started successfully"})
}

// ListAll handles GET /api/orders/all.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ListByUser handles GET /api/orders/by_user/:user_id.
func (h *OrderHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	orders, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Register handles POST /api/orders/register: validates the payload,
// confirms the referenced user with the user API, then persists.
//
// @Summary      Register a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Order details"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  detailResponse
// @Failure      404   {object}  detailResponse
// @Router       /api/orders/register [post]
func (h *OrderHandler) Register(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.Register(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Update handles PUT /api/orders/update/:id.
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /api/orders/delete/:id.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailResponse{Detail: "order deleted successfully"})
}

// DeleteByUser handles DELETE /api/orders/delete/by_user/:user_id, the
// endpoint the user API invokes when cascading a user deletion. Zero
// matching orders answers 404, which the caller reads as success.
func (h *OrderHandler) DeleteByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteByUser(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailResponse{Detail: "user's orders deleted successfully"})
}
