package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brocoachme/coach-app/internal/api"
	"brocoachme/coach-app/internal/config"
	"brocoachme/coach-app/internal/repository/mongo"
	"brocoachme/coach-app/internal/service"
	"brocoachme/coach-app/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting broCoachme API server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation in the background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureCoachIndexes(ctx, appDB.Collection("coaches"))
		mongo.EnsureClientIndexes(ctx, appDB.Collection("clients"))
		mongo.EnsureInviteIndexes(ctx, appDB.Collection("invites"))
		mongo.EnsureProgramIndexes(ctx, appDB.Collection("programs"))
		mongo.EnsureSessionIndexes(ctx, appDB.Collection("sessions"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureNoteIndexes(ctx, appDB.Collection("notes"))
		mongo.EnsureActivityIndexes(ctx, appDB.Collection("activities"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing media storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	coachRepo := mongo.NewMongoCoachRepository(appDB)
	clientRepo := mongo.NewMongoClientRepository(appDB)
	inviteRepo := mongo.NewMongoInviteRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	noteRepo := mongo.NewMongoNoteRepository(appDB)
	activityRepo := mongo.NewMongoActivityRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(coachRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	dashboardService := service.NewDashboardService(clientRepo, activityRepo)
	clientService := service.NewClientService(clientRepo, inviteRepo, noteRepo, activityRepo)
	programService := service.NewProgramService(programRepo, sessionRepo, exerciseRepo, activityRepo)
	mediaService := service.NewMediaService(fileStorage)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, appDB, authService, dashboardService, clientService, programService, mediaService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give in-flight requests 5 seconds to finish
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
