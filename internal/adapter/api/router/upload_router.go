package router

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/adapter/api/handler"
	"artfolio/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	e.POST("/api/upload/sign", uploadHandler.SignUpload, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
}
