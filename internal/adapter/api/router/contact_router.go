package router

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/adapter/api/handler"
	"artfolio/internal/adapter/api/middleware"
)

func SetupContactRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	contactHandler := handler.GetContactHandler()

	// Anyone can submit; reading the inbox is dashboard-only.
	e.POST("/api/contact", contactHandler.SubmitMessage)
	e.GET("/api/messages", contactHandler.ListMessages, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
}
