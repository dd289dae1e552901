package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"artfolio/internal/adapter/api"
	"artfolio/internal/adapter/api/handler"
	apimiddleware "artfolio/internal/adapter/api/middleware"
	"artfolio/internal/adapter/api/router"
	"artfolio/internal/adapter/repository"
	"artfolio/internal/infrastructure/firebase"
	"artfolio/internal/infrastructure/storage"
	"artfolio/internal/usecase"
	"artfolio/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable in production, file path for
	// local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	graphicRepo := repository.NewFirestoreGraphicRepository(firestoreClient)
	reelRepo := repository.NewFirestoreReelRepository(firestoreClient)
	videoRepo := repository.NewFirestoreVideoRepository(firestoreClient)
	projectRepo := repository.NewFirestoreProjectRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	graphicUseCase := usecase.NewMediaUseCase(graphicRepo, storageClient, "Graphic")
	reelUseCase := usecase.NewMediaUseCase(reelRepo, storageClient, "Reel")
	videoUseCase := usecase.NewMediaUseCase(videoRepo, storageClient, "Video")
	projectUseCase := usecase.NewProjectUseCase(projectRepo, storageClient)
	contactUseCase := usecase.NewContactUseCase(messageRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)

	handler.Setup(graphicUseCase, reelUseCase, videoUseCase, projectUseCase, contactUseCase, authUseCase, storageClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
