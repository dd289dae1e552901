package handler

import (
	"artfolio/internal/domain/service"
	"artfolio/internal/usecase"
)

var (
	graphicHandler *GraphicHandler
	reelHandler    *ReelHandler
	videoHandler   *VideoHandler
	projectHandler *ProjectHandler
	contactHandler *ContactHandler
	authHandler    *AuthHandler
	uploadHandler  *UploadHandler
	healthHandler  *HealthHandler
)

func Setup(
	graphicUseCase *usecase.GraphicUseCase,
	reelUseCase *usecase.ReelUseCase,
	videoUseCase *usecase.VideoUseCase,
	projectUseCase *usecase.ProjectUseCase,
	contactUseCase *usecase.ContactUseCase,
	authUseCase *usecase.AuthUseCase,
	assets service.AssetStorage,
) {
	graphicHandler = NewGraphicHandler(graphicUseCase)
	reelHandler = NewReelHandler(reelUseCase)
	videoHandler = NewVideoHandler(videoUseCase)
	projectHandler = NewProjectHandler(projectUseCase)
	contactHandler = NewContactHandler(contactUseCase)
	authHandler = NewAuthHandler(authUseCase)
	uploadHandler = NewUploadHandler(assets)
	healthHandler = NewHealthHandler()
}

func GetGraphicHandler() *GraphicHandler {
	return graphicHandler
}

func GetReelHandler() *ReelHandler {
	return reelHandler
}

func GetVideoHandler() *VideoHandler {
	return videoHandler
}

func GetProjectHandler() *ProjectHandler {
	return projectHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
