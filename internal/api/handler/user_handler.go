package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lojaviva/commerce-system/internal/core/domain"
	"github.com/lojaviva/commerce-system/internal/core/ports"
	"github.com/lojaviva/commerce-system/internal/core/service"
	"github.com/lojaviva/commerce-system/internal/metrics"
)

// UserHandler handles HTTP requests for user operations. It binds and
// parses, delegates to the service, and serialises; every failure is
// returned as-is for the central error handler to translate.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Health handles GET /, confirming the API is up.
func (h *UserHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, detailResponse{Detail: "User API has started successfully"})
}

// ListAll handles GET /api/users/all.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      404  {object}  detailResponse
// @Router       /api/users/all [get]
func (h *UserHandler) ListAll(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Register handles POST /api/users/register.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  detailResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Register(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/users/update/:id.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/delete/:id: removes the user and
// cascades into the order API. The local delete is not rolled back when the
// cascade fails; the caller gets a 500 and the inconsistency is logged.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	msg, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		if domain.KindOf(err) == domain.KindUpstream {
			metrics.CascadeOutcomesTotal.WithLabelValues("failed").Inc()
		}
		return err
	}

	result := "orders_deleted"
	if msg == service.MsgUserDeletedNoOrders {
		result = "no_orders"
	}
	metrics.CascadeOutcomesTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, detailResponse{Detail: msg})
}
