package database

import (
	"fmt"
	"log"
	"net/url"

	"github.com/todolist-team/todolist-api/internal/config"
	"github.com/todolist-team/todolist-api/internal/models"
	"github.com/todolist-team/todolist-api/internal/timezone"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Every GORM-managed timestamp (created_at/updated_at) is civil time in
		// the reference zone, matching the deadline and closed_at columns.
		NowFunc: timezone.Now,
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=%s",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
			url.QueryEscape(timezone.Name),
		)
		dialector = mysql.Open(dsn)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBSSLMode,
			timezone.Name,
		)
		dialector = postgres.Open(dsn)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected postgres or mysql)", cfg.DBDriver)
	}

	var err error
	DB, err = gorm.Open(dialector, gormCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")
	return nil
}

func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.Project{},
		&models.Task{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
