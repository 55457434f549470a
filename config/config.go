package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	ServerPort string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string

	AdminEmail   string
	ContactEmail string

	ClientUrl string

	// DefaultCountryCode is prepended to phone numbers submitted without one
	DefaultCountryCode string

	AdminAPIKey string
)

// LoadConfig loads the environment variables from the .env file if present
// and populates the package-level configuration values
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "dare_exchange")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	MailHost = getEnv("MAIL_HOST", "")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")

	AdminEmail = getEnv("ADMIN_EMAIL", "admin@dareora.com")
	ContactEmail = getEnv("CONTACT_EMAIL", "contact@dareora.com")

	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")

	DefaultCountryCode = getEnv("DEFAULT_COUNTRY_CODE", "+91")

	AdminAPIKey = getEnv("ADMIN_API_KEY", "")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
