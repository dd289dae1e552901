package router

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/adapter/api/handler"
	"artfolio/internal/adapter/api/middleware"
)

func SetupGraphicRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	graphicHandler := handler.GetGraphicHandler()

	// The list feeds the public gallery; mutations are dashboard-only.
	e.GET("/api/graphic", graphicHandler.ListGraphics)
	e.POST("/api/graphic", graphicHandler.CreateGraphic, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	e.DELETE("/api/graphic", graphicHandler.DeleteGraphic, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
}
