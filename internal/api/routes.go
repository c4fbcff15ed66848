package api

import (
	"brocoachme/coach-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes registers every endpoint on the router. db is passed separately
// for the diagnostics endpoint, which inspects the store directly.
func SetupRoutes(
	router *gin.Engine,
	db *mongo.Database,
	authService service.AuthService,
	dashboardService service.DashboardService,
	clientService service.ClientService,
	programService service.ProgramService,
	mediaService service.MediaService,
) {
	systemHandler := NewSystemHandler(db)
	authHandler := NewAuthHandler(authService)
	dashboardHandler := NewDashboardHandler(dashboardService)
	clientHandler := NewClientHandler(clientService)
	programHandler := NewProgramHandler(programService)
	mediaHandler := NewMediaHandler(mediaService)

	router.Use(CORSMiddleware())

	router.GET("/", systemHandler.Root)
	router.GET("/test", systemHandler.TestDatabase)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	router.GET("/dashboard/summary", dashboardHandler.Summary)

	clientGroup := router.Group("/clients")
	{
		clientGroup.GET("", clientHandler.ListClients)
		clientGroup.POST("", clientHandler.AddClient)
		clientGroup.POST("/:clientId/notes", clientHandler.AddNote)
	}

	router.POST("/invites", clientHandler.SendInvite)

	programGroup := router.Group("/programs")
	{
		programGroup.GET("", programHandler.ListPrograms)
		programGroup.POST("", programHandler.CreateProgram)
		programGroup.GET("/:programId", programHandler.GetProgram)
		programGroup.POST("/:programId/sessions", programHandler.AddSession)
	}

	sessionGroup := router.Group("/sessions")
	{
		sessionGroup.GET("/:sessionId", programHandler.GetSession)
		sessionGroup.POST("/:sessionId/exercises", programHandler.AddExercise)
	}

	mediaGroup := router.Group("/media")
	{
		mediaGroup.POST("/upload-url", mediaHandler.CreateUploadURL)
		mediaGroup.GET("/view-url", mediaHandler.CreateViewURL)
	}
}
