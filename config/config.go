package config

import (
	"os"
)

// Config holds everything the service reads from the environment.
// A .env file is loaded by main before this is built.
type Config struct {
	Port           string
	APIBaseURL     string
	DataPath       string
	WhatsAppNumber string
	JWTSecret      string
	AdminUser      string
	AdminPassword  string
	LogLevel       string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		APIBaseURL:     getEnv("API_URL", "http://localhost:5000"),
		DataPath:       getEnv("DATA_PATH", "data/ayounioptic.db"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "+212696570164"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AdminUser:      getEnv("ADMIN_USER", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
