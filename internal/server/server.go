package server

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"warehouse/internal/handler"
	"warehouse/internal/middleware"
)

func Start(
	addr string,
	log *zap.Logger,
	productH *handler.ProductHandler,
	customerH *handler.CustomerHandler,
	orderH *handler.OrderHandler,
	orderDetailH *handler.OrderDetailHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.Metrics())

	RegisterRoutes(e, productH, customerH, orderH, orderDetailH)

	return e.Start(addr)
}
