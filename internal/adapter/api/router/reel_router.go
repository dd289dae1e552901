package router

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/adapter/api/handler"
	"artfolio/internal/adapter/api/middleware"
)

func SetupReelRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reelHandler := handler.GetReelHandler()

	e.GET("/api/reel", reelHandler.ListReels)
	e.POST("/api/reel", reelHandler.CreateReel, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	e.PUT("/api/reel", reelHandler.UpdateReel, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	e.DELETE("/api/reel", reelHandler.DeleteReel, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
}
