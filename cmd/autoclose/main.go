// Command autoclose runs one auto-close sweep and exits. It is meant to be
// invoked by an external scheduler (cron); the API exposes the same sweep at
// POST /api/tasks/auto-close-overdue.
package main

import (
	"log"
	"os"

	"github.com/todolist-team/todolist-api/internal/config"
	"github.com/todolist-team/todolist-api/internal/database"
	"github.com/todolist-team/todolist-api/internal/repository"
	"github.com/todolist-team/todolist-api/internal/services"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Printf("ERROR: failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		log.Printf("ERROR: failed to run migrations: %v", err)
		os.Exit(1)
	}

	db := database.GetDB()
	projectRepo := repository.NewProjectRepository(db, cfg.MaxNumberOfProject)
	taskRepo := repository.NewTaskRepository(db, cfg.MaxNumberOfTask)
	taskService := services.NewTaskService(db, taskRepo, projectRepo, cfg.MaxNumberOfTask)

	if _, err := taskService.AutoCloseOverdueTasks(); err != nil {
		log.Printf("ERROR: auto-close sweep failed: %v", err)
		os.Exit(1)
	}
}
