package interviewer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"citizen-interview/internal/api"
	"citizen-interview/internal/config"
	"citizen-interview/internal/interview"
	"citizen-interview/internal/prompts"
)

// Judge проверяет ответ через языковую модель
type Judge struct {
	client  api.Client
	persona config.Persona
	format  string
	strict  bool
	logger  zerolog.Logger
}

func NewJudge(client api.Client, persona config.Persona, cfg config.JudgeConfig, logger zerolog.Logger) *Judge {
	format := cfg.OutputFormat
	if format == "" {
		format = config.JudgeFormatYesNo
	}
	return &Judge{
		client:  client,
		persona: persona,
		format:  format,
		strict:  cfg.Strict,
		logger:  logger,
	}
}

func (j *Judge) Evaluate(ctx context.Context, question, answer, reference string) (interview.Verdict, error) {
	messages := []api.Message{
		{Role: api.RoleSystem, Content: prompts.EvaluateSystem(j.persona, j.format)},
		{Role: api.RoleUser, Content: prompts.EvaluateState(question, answer, reference)},
	}

	response, err := j.client.Complete(ctx, messages)
	if err != nil {
		return interview.Verdict{}, err
	}

	verdict, err := j.parse(response)
	if err != nil {
		j.logger.Warn().Str("response", response).Msg("judge response rejected")
		return interview.Verdict{}, err
	}
	return verdict, nil
}

func (j *Judge) parse(response string) (interview.Verdict, error) {
	if j.format == config.JudgeFormatJSON {
		return parseJSONVerdict(response, j.strict)
	}
	return parseYesNoVerdict(response, j.strict)
}

// parseYesNoVerdict разбирает ответ из одного слова. Без strict все, кроме YES, считается неверным ответом.
func parseYesNoVerdict(response string, strict bool) (interview.Verdict, error) {
	word := strings.ToUpper(strings.Trim(strings.TrimSpace(response), ".!\"'` "))

	switch word {
	case "YES":
		return interview.Verdict{Correct: true}, nil
	case "NO":
		return interview.Verdict{Correct: false}, nil
	}

	if strict {
		return interview.Verdict{}, fmt.Errorf("%w: expected YES or NO, got %q", interview.ErrJudgeResponseMalformed, response)
	}
	return interview.Verdict{Correct: false}, nil
}

type jsonVerdict struct {
	Correct  *bool  `json:"correct"`
	Feedback string `json:"feedback"`
}

func parseJSONVerdict(response string, strict bool) (interview.Verdict, error) {
	var v jsonVerdict
	err := json.Unmarshal([]byte(strings.TrimSpace(response)), &v)
	if err == nil && v.Correct != nil {
		return interview.Verdict{Correct: *v.Correct, Feedback: strings.TrimSpace(v.Feedback)}, nil
	}

	if strict {
		if err == nil {
			err = fmt.Errorf("field \"correct\" missing")
		}
		return interview.Verdict{}, fmt.Errorf("%w: %w", interview.ErrJudgeResponseMalformed, err)
	}
	return parseYesNoVerdict(response, false)
}
