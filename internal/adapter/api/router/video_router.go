package router

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/adapter/api/handler"
	"artfolio/internal/adapter/api/middleware"
)

func SetupVideoRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	videoHandler := handler.GetVideoHandler()

	e.GET("/api/video", videoHandler.ListVideos)
	e.POST("/api/video", videoHandler.CreateVideo, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	e.DELETE("/api/video", videoHandler.DeleteVideo, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
}
