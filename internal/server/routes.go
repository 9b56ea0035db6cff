package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warehouse/internal/handler"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	customerH *handler.CustomerHandler,
	orderH *handler.OrderHandler,
	orderDetailH *handler.OrderDetailHandler,
) {
	productH.RegisterRoutes(e)
	customerH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	orderDetailH.RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
