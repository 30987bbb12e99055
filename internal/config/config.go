package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

const AppName = "ttcs-be"

// Config is built once at process start and handed to collaborators by
// reference; nothing reads the environment after LoadConfig returns.
type Config struct {
	AppName     string
	AppPort     string
	AppUrl      string
	FrontendURL string
	LogLevel    string

	DBUrl string

	// Worker and recruiter access tokens are signed with distinct secrets.
	WorkerAccessSecret    []byte
	RecruiterAccessSecret []byte

	SendGridAPIKey    string
	SendGridFromEmail string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	VerifyTokenTTL  time.Duration
}

func LoadConfig() *Config {
	// Best effort; env vars win over the .env file.
	_ = godotenv.Load()

	cfg := &Config{
		AppName:               AppName,
		AppPort:               requireEnv("APP_PORT"),
		AppUrl:                requireEnv("APP_URL"),
		FrontendURL:           requireEnv("FE_APP_URL"),
		LogLevel:              optionalEnv("LOG_LEVEL", "info"),
		DBUrl:                 requireEnv("DB_URL"),
		WorkerAccessSecret:    []byte(requireEnv("WORKER_JWT_ACCESS_TOKEN_SECRET")),
		RecruiterAccessSecret: []byte(requireEnv("RECRUITER_JWT_ACCESS_TOKEN_SECRET")),
		SendGridAPIKey:        requireEnv("SENDGRID_API_KEY"),
		SendGridFromEmail:     requireEnv("SENDGRID_FROM_EMAIL"),
		AccessTokenTTL:        time.Hour,
		RefreshTokenTTL:       30 * 24 * time.Hour,
		VerifyTokenTTL:        time.Hour,
	}

	if string(cfg.WorkerAccessSecret) == string(cfg.RecruiterAccessSecret) {
		utils.Logger.Fatal("Worker and recruiter JWT secrets must differ")
	}

	return cfg
}

func optionalEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func requireEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return val
}
