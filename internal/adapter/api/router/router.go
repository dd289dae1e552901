package router

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupGraphicRouter(e, authMiddleware, adminMiddleware)
	SetupReelRouter(e, authMiddleware, adminMiddleware)
	SetupVideoRouter(e, authMiddleware, adminMiddleware)
	SetupProjectRouter(e, authMiddleware, adminMiddleware)
	SetupContactRouter(e, authMiddleware, adminMiddleware)
	SetupUploadRouter(e, authMiddleware, adminMiddleware)
	SetupAuthRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
