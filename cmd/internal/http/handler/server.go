package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewServer wires every route and the common middleware.
func NewServer(accounts AccountService, orders OrderService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == "/health" },
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	NewAccountDefault(accounts).Register(e)
	NewOrderDefault(orders).Register(e)

	e.GET("/health", HealthCheck)
	return e
}
