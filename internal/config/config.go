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
	Ai       AIConfig
	ImageAPI ImageAPIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	LLMProvider string // "openrouter", "ollama"
	BaseURL     string
	APIKey      string
	Model       string
}

type ImageAPIConfig struct {
	BaseURL   string
	Key       string
	Secret    string
	PollEvery int // seconds between status polls
	MaxPolls  int
	Width     int
	Height    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider: getEnv("LLM_PROVIDER", "openrouter"),
			BaseURL:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			APIKey:      getEnv("OPENROUTER_API_KEY", ""),
			Model:       getEnv("LLM_MODEL", "deepseek/deepseek-chat"),
		},
		ImageAPI: ImageAPIConfig{
			BaseURL:   getEnv("IMAGE_API_BASE_URL", "https://api-key.fusionbrain.ai"),
			Key:       getEnv("IMAGE_API_KEY", ""),
			Secret:    getEnv("IMAGE_API_SECRET", ""),
			PollEvery: getEnvAsInt("IMAGE_POLL_INTERVAL_SECONDS", 10),
			MaxPolls:  getEnvAsInt("IMAGE_MAX_POLLS", 20),
			Width:     getEnvAsInt("IMAGE_WIDTH", 1024),
			Height:    getEnvAsInt("IMAGE_HEIGHT", 1024),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
