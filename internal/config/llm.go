package config

import (
	"fmt"
	"math"
	"time"
)

// Провайдеры языковой модели
const (
	ProviderOpenAI = "openai"
	ProviderAzure  = "azure"
)

// MaxTokensLimit верхняя граница LLM_MAX_TOKENS: Azure SDK принимает int32
const MaxTokensLimit = math.MaxInt32

type LLMConfig struct {
	Provider          string
	APIKey            string
	Model             string
	BaseURL           string
	AzureEndpoint     string
	AzureAPIKey       string
	AzureDeployment   string
	MaxTokens         int
	Temperature       float64
	Timeout           time.Duration
	RequestsPerSecond float64
}

// ValidateConfig проверяет корректность конфигурации
func (c *LLMConfig) ValidateConfig() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
		if c.Model == "" {
			return fmt.Errorf("OPENAI_MODEL is required")
		}
	case ProviderAzure:
		if c.AzureEndpoint == "" {
			return fmt.Errorf("AZURE_OPENAI_ENDPOINT is required")
		}
		if c.AzureAPIKey == "" {
			return fmt.Errorf("AZURE_OPENAI_API_KEY is required")
		}
		if c.AzureDeployment == "" {
			return fmt.Errorf("AZURE_OPENAI_DEPLOYMENT is required")
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.Provider)
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive")
	}

	if c.MaxTokens > MaxTokensLimit {
		return fmt.Errorf("LLM_MAX_TOKENS must not exceed %d", MaxTokensLimit)
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}

	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("LLM_REQUESTS_PER_SECOND cannot be negative")
	}

	return nil
}

// GetModelInfo возвращает информацию о используемой модели
func (c *LLMConfig) GetModelInfo() map[string]interface{} {
	model := c.Model
	if c.Provider == ProviderAzure {
		model = c.AzureDeployment
	}
	return map[string]interface{}{
		"model":       model,
		"max_tokens":  c.MaxTokens,
		"temperature": c.Temperature,
		"provider":    c.Provider,
	}
}
