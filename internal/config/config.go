package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	GinMode    string

	MaxNumberOfProject int
	MaxNumberOfTask    int
}

func Load() *Config {
	cfg := &Config{
		DBDriver:           getEnv("DB_DRIVER", "postgres"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "todolist_user"),
		DBPassword:         getEnv("DB_PASSWORD", "todolist_pass"),
		DBName:             getEnv("DB_NAME", "todolist_db"),
		DBSSLMode:          getEnv("DB_SSLMODE", "disable"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		MaxNumberOfProject: getEnvInt("MAX_NUMBER_OF_PROJECT", 10),
		MaxNumberOfTask:    getEnvInt("MAX_NUMBER_OF_TASK", 50),
	}

	// Caps below 1 would make every create fail; fall back to the defaults.
	if cfg.MaxNumberOfProject < 1 {
		log.Printf("Warning: MAX_NUMBER_OF_PROJECT must be >= 1, got %d. Using default: 10", cfg.MaxNumberOfProject)
		cfg.MaxNumberOfProject = 10
	}
	if cfg.MaxNumberOfTask < 1 {
		log.Printf("Warning: MAX_NUMBER_OF_TASK must be >= 1, got %d. Using default: 50", cfg.MaxNumberOfTask)
		cfg.MaxNumberOfTask = 50
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: Invalid value for %s='%s'. Using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
