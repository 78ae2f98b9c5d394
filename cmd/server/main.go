package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/todolist-team/todolist-api/internal/config"
	"github.com/todolist-team/todolist-api/internal/database"
	"github.com/todolist-team/todolist-api/internal/handlers"
	"github.com/todolist-team/todolist-api/internal/repository"
	"github.com/todolist-team/todolist-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Wire repositories and services
	projectRepo := repository.NewProjectRepository(db, cfg.MaxNumberOfProject)
	taskRepo := repository.NewTaskRepository(db, cfg.MaxNumberOfTask)
	projectService := services.NewProjectService(projectRepo, taskRepo)
	taskService := services.NewTaskService(db, taskRepo, projectRepo, cfg.MaxNumberOfTask)

	// Initialize handlers
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todolist API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("/auto-close-overdue", taskHandler.AutoCloseOverdue)
			tasks.GET("/project/:project_id", taskHandler.GetTasksByProject)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
