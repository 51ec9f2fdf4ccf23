package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/lojaviva/commerce-system/internal/api/handler"
)

// newEcho builds an Echo instance with the middleware stack and error
// translation shared by both APIs.
func newEcho(serviceName string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(serviceName))

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// NewUserRouter registers every user API route.
func NewUserRouter(h *handler.UserHandler, log zerolog.Logger) *echo.Echo {
	e := newEcho("user_api", log)

	e.GET("/", h.Health)
	e.GET("/api/users/all", h.ListAll)
	e.GET("/api/users/:id", h.Get)
	e.POST("/api/users/register", h.Register)
	e.PUT("/api/users/update/:id", h.Update)
	e.DELETE("/api/users/delete/:id", h.Delete)

	return e
}

// NewOrderRouter registers every order API route.
func NewOrderRouter(h *handler.OrderHandler, log zerolog.Logger) *echo.Echo {
	e := newEcho("order_api", log)

	e.GET("/", h.Health)
	e.GET("/api/orders/all", h.ListAll)
	e.GET("/api/orders/by_user/:user_id", h.ListByUser)
	e.GET("/api/orders/:id", h.Get)
	e.POST("/api/orders/register", h.Register)
	e.PUT("/api/orders/update/:id", h.Update)
	e.DELETE("/api/orders/delete/:id", h.Delete)
	e.DELETE("/api/orders/delete/by_user/:user_id", h.DeleteByUser)

	return e
}
