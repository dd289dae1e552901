package router

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/adapter/api/handler"
	"artfolio/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	e.GET("/api/auth/me", authHandler.Me, authMiddleware.Authenticate)
}
