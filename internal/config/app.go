package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	LLM LLMConfig
	Log LogConfig
}

type LogConfig struct {
	Level  string
	Format string
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		LLM: LLMConfig{
			Provider:          strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
			APIKey:            getEnv("OPENAI_API_KEY", ""),
			Model:             getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL:           getEnv("OPENAI_BASE_URL", ""),
			AzureEndpoint:     getEnv("AZURE_OPENAI_ENDPOINT", ""),
			AzureAPIKey:       getEnv("AZURE_OPENAI_API_KEY", ""),
			AzureDeployment:   getEnv("AZURE_OPENAI_DEPLOYMENT", ""),
			MaxTokens:         getEnvAsInt("LLM_MAX_TOKENS", 500),
			Temperature:       getEnvAsFloat("LLM_TEMPERATURE", 0.5),
			Timeout:           getEnvAsDuration("LLM_TIMEOUT", 120*time.Second),
			RequestsPerSecond: getEnvAsFloat("LLM_REQUESTS_PER_SECOND", 2),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
