package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	JWTSecret       string
	MongoURI        string
	DBName          string
	SkipAuth        bool
	Environment     string
	AppId           string
	ExportDir       string // Physical directory for generated report artifacts
	ExportURL       string // URL path prefix for serving persisted artifacts
	ExportRetention int    // Days to keep generated artifacts before cleanup
	CleanupSchedule string // Cron expression for the export cleanup job
	DeliveryMode    string // "download" (web-like host) or "share" (native-like host)
	ShareAvailable  bool   // Whether the host registered a share target
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:          getEnv("DB_NAME", "bbt-connect"),
		SkipAuth:        getEnv("SKIP_AUTH", "false") == "true",
		Environment:     getEnv("ENVIRONMENT", "development"),
		AppId:           getEnv("APP_ID", "bbt-connect"),
		ExportDir:       getEnv("EXPORT_DIR", "./exports"),
		ExportURL:       getEnv("EXPORT_URL", "/fs/exports"),
		ExportRetention: getEnvInt("EXPORT_RETENTION_DAYS", 7),
		CleanupSchedule: getEnv("CLEANUP_SCHEDULE", "0 3 * * *"),
		DeliveryMode:    getEnv("DELIVERY_MODE", "download"),
		ShareAvailable:  getEnv("SHARE_AVAILABLE", "true") == "true",
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
