// Package interviewer связывает автомат интервью с языковой моделью и консолью.
package interviewer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"citizen-interview/internal/api"
	"citizen-interview/internal/config"
	"citizen-interview/internal/interview"
	"citizen-interview/internal/prompts"
)

// Service формулирует реплики интервьюера через языковую модель
type Service struct {
	client  api.Client
	persona config.Persona
	logger  zerolog.Logger
}

// New создает новый сервис интервьюера
func New(client api.Client, persona config.Persona, logger zerolog.Logger) *Service {
	return &Service{
		client:  client,
		persona: persona,
		logger:  logger,
	}
}

// PhraseQuestion просит модель задать очередной вопрос с отзывом о предыдущем ответе
func (s *Service) PhraseQuestion(ctx context.Context, q interview.QuestionPrompt) (string, error) {
	messages := []api.Message{
		{Role: api.RoleSystem, Content: prompts.AskQuestionSystem(s.persona)},
		{Role: api.RoleUser, Content: prompts.AskQuestionState(q)},
	}

	text, err := s.complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("question %d: %w", q.Index, err)
	}

	s.logger.Debug().Int("index", q.Index).Int("length", len(text)).Msg("question phrased")
	return text, nil
}

// PhraseConclusion просит модель объявить результат
func (s *Service) PhraseConclusion(ctx context.Context, c interview.ConclusionPrompt) (string, error) {
	messages := []api.Message{
		{Role: api.RoleSystem, Content: prompts.ConcludeSystem(s.persona)},
		{Role: api.RoleUser, Content: prompts.ConcludeState(c)},
	}

	text, err := s.complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("conclusion: %w", err)
	}
	return text, nil
}

func (s *Service) complete(ctx context.Context, messages []api.Message) (string, error) {
	response, err := s.client.Complete(ctx, messages)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(response)
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
