// Package api содержит клиентов языковой модели, которые используют рассказчик и проверяющий.
package api

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"citizen-interview/internal/config"
	"citizen-interview/internal/metrics"
)

// Роли сообщений чата
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client отправляет диалог модели и возвращает текст ответа
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// New создает клиента для провайдера из конфигурации
func New(cfg config.LLMConfig, m *metrics.Metrics) (Client, error) {
	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case config.ProviderAzure:
		return NewAzureClient(cfg, m)
	default:
		return NewOpenAIClient(cfg, m), nil
	}
}

// newLimiter ограничивает частоту запросов к модели. Ноль отключает ограничение.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

func recordCall(m *metrics.Metrics, success bool) {
	if m != nil {
		m.IncrementAPICall(success)
	}
}

func validateMessages(messages []Message) error {
	if len(messages) == 0 {
		return fmt.Errorf("no messages to send")
	}
	return nil
}

// cleanResponse удаляет markdown форматирование из ответа
func cleanResponse(response string) string {
	response = strings.TrimSpace(response)
	if !strings.HasPrefix(response, "```") {
		return response
	}

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	return strings.TrimSpace(response)
}
