package router

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/adapter/api/handler"
	"artfolio/internal/adapter/api/middleware"
)

func SetupProjectRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	projectHandler := handler.GetProjectHandler()

	e.GET("/api/projects", projectHandler.ListProjects)
	e.POST("/api/projects", projectHandler.CreateProject, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	e.DELETE("/api/projects", projectHandler.DeleteProject, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
}
