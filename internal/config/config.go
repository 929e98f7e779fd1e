package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Upload UploadConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LLMConfig struct {
	Provider     string
	GroqAPIKey   string
	GroqModel    string
	GroqBaseURL  string
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration
}

type UploadConfig struct {
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		LLM: LLMConfig{
			Provider:     getEnv("LLM_PROVIDER", "groq"),
			GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
			GroqModel:    getEnv("GROQ_MODEL", "llama3-70b-8192"),
			GroqBaseURL:  getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1/"),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout:      getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
