package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	// Driver selects the GORM dialect: "sqlite" or "postgres".
	Driver string
	// Connection is the postgres DSN when Driver is "postgres".
	Connection string
	// SQLitePath is the database file when Driver is "sqlite".
	SQLitePath string
	// SeedOnStart loads the built-in passages when the verse table is empty.
	SeedOnStart bool
}

type EventsConfig struct {
	SessionUpdatedTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", "sqlite"),
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
			SQLitePath:  getEnv("DB_SQLITE_PATH", "canon.db"),
			SeedOnStart: getEnvAsBool("DB_SEED_ON_START", true),
		},
		Events: EventsConfig{
			SessionUpdatedTopic: getEnv("SESSION_UPDATED_TOPIC_NAME", "SESSION_UPDATED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
