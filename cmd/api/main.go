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

	"tutorconnect/internal/adapter/api"
	"tutorconnect/internal/adapter/api/handler"
	apimiddleware "tutorconnect/internal/adapter/api/middleware"
	"tutorconnect/internal/adapter/api/router"
	"tutorconnect/internal/adapter/repository"
	"tutorconnect/internal/infrastructure/ai"
	"tutorconnect/internal/infrastructure/firebase"
	"tutorconnect/internal/infrastructure/mail"
	"tutorconnect/internal/infrastructure/storage"
	"tutorconnect/internal/infrastructure/websocket"
	"tutorconnect/internal/usecase"
	"tutorconnect/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
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

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	tutorRepo := repository.NewFirestoreTutorRepository(firestoreClient)
	parentRepo := repository.NewFirestoreParentRepository(firestoreClient)
	sessionRepo := repository.NewFirestoreSessionRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	materialRepo := repository.NewFirestoreMaterialRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)
	notifier := mail.NewResendClient(cfg.ResendApiKey, cfg.EmailFrom, cfg.EmailReplyTo, cfg.FrontendURL)
	generator := ai.NewGroqClient(cfg.GroqApiKey, cfg.GroqModel)
	if !generator.IsConfigured() {
		log.Printf("GROQ_API_KEY is not set, assistant endpoints will return errors")
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	var demoSource usecase.DemoTutorSource
	if cfg.DemoTutors {
		demoSource = usecase.NewDemoTutorSource()
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, tutorRepo, parentRepo, firebaseAuthClient)
	tutorUseCase := usecase.NewTutorUseCase(tutorRepo, userRepo, reviewRepo, demoSource)
	bookingUseCase := usecase.NewBookingUseCase(sessionRepo, parentRepo, tutorRepo, userRepo, notifier)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, parentRepo, tutorRepo)
	parentUseCase := usecase.NewParentUseCase(parentRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, userRepo, wsManager)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo, storageClient)
	assistantUseCase := usecase.NewAssistantUseCase(generator)

	handler.Setup(authUseCase, tutorUseCase, bookingUseCase, reviewUseCase, parentUseCase, messageUseCase, assistantUseCase)
	handler.SetupMaterialHandler(materialUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)

	wsHandler := handler.NewWebSocketHandler(wsManager, authClient)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
