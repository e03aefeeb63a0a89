// Package config centralizes environment-driven configuration.
package config

import (
	"errors"
	"os"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPass       string
	SenderEmail    string
	FrontendOrigin string
}

// Load reads the configuration from environment variables, applying
// defaults where a value is optional. JWT_SECRET is required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "mailauth"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
