package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobpilot/jobpilot/internal/auth"
	"github.com/jobpilot/jobpilot/internal/database"
	"github.com/jobpilot/jobpilot/internal/handlers"
	"github.com/jobpilot/jobpilot/internal/services"
	"github.com/joho/godotenv"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. Initialize Core Services
	llmService := services.NewLLMService()
	appService := services.NewApplicationService(db)
	sprintService := services.NewSprintService(db)
	chatService := services.NewChatService(appService, llmService)

	// 4. Initialize Calendar Integration
	log.Println("Initializing Calendar Client...")
	var calendarService *calendar.Service
	if httpClient := auth.GetCalendarClient(); httpClient != nil {
		ctx := context.Background()
		svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
		if err != nil {
			log.Printf("⚠️  Failed to create Calendar Service: %v", err)
		} else {
			log.Println("✅ Calendar Service connected successfully.")
			calendarService = svc
		}
	}

	// 5. Initialize Calendar Watcher
	// The watcher also sweeps expired sprints, so it runs even without a
	// calendar client.
	watcher := services.NewCalendarService(db, appService, sprintService, calendarService)
	watcher.StartWatcher()

	// 6. Initialize Handlers
	appHandler := handlers.NewApplicationHandler(appService, sprintService)
	sprintHandler := handlers.NewSprintHandler(appService, sprintService)
	chatHandler := handlers.NewChatHandler(chatService, llmService)
	dashboardHandler := handlers.NewDashboardHandler(appService)

	// 7. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 8. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/dashboard", dashboardHandler.Overview)

		api.POST("/applications", appHandler.Create)
		api.GET("/applications", appHandler.List)
		api.GET("/applications/:id", appHandler.Get)
		api.PATCH("/applications/:id", appHandler.Update)
		api.PATCH("/applications/:id/status", appHandler.MoveStatus)
		api.DELETE("/applications/:id", appHandler.Delete)
		api.GET("/applications/:id/sprint", sprintHandler.GetByApplication)

		api.POST("/chat/intake", chatHandler.Intake)
		api.POST("/chat/extract", chatHandler.Extract)

		api.POST("/sprints", sprintHandler.Create)
		api.GET("/sprints/:id", sprintHandler.Get)
		api.POST("/sprints/:id/tasks/:taskID/toggle", sprintHandler.ToggleTask)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
