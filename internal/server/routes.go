package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	authH *handler.AuthHandler,
	catalogH *handler.CatalogHandler,
	orderH *handler.OrderHandler,
	reviewH *handler.ReviewHandler,
) {
	authH.RegisterRoutes(e)
	catalogH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)
	reviewH.RegisterRoutes(e, cfg)
}
