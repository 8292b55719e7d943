package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	BaseURL   string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	UploadDir string

	EmailSender string
	Password    string // SMTP app password
	SMTPHost    string
	SMTPPort    string

	MeetingBaseURL string // base URL of the external meeting provider
	MeetingAPIKey  string // optional provider API key for room registration
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:3000"),
		JWTKey:    os.Getenv("JWT_SECRET_KEY"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),

		UploadDir: getEnv("UPLOAD_DIR", "./public/uploads"),

		EmailSender: os.Getenv("EMAIL_SENDER"),
		Password:    os.Getenv("EMAIL_PASSWORD"),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),

		MeetingBaseURL: getEnv("MEETING_BASE_URL", "https://meet.jit.si"),
		MeetingAPIKey:  os.Getenv("MEETING_API_KEY"),
	}

	// Secrets and connection params have no fallbacks. Refuse to boot without them.
	if AppConfig.JWTKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set. Refusing to start with an empty signing key.")
	}
	if AppConfig.DBHost == "" || AppConfig.DBUser == "" || AppConfig.DBName == "" {
		log.Fatal("Database configuration incomplete. DB_HOST, DB_USER and DB_NAME are required.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
