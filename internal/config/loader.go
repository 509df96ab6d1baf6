package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load загружает конфигурацию из YAML файла поверх значений по умолчанию.
// Относительный questions_file считается от каталога конфигурации.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if path := config.InterviewConfig.QuestionsFile; path != "" && !filepath.IsAbs(path) {
		if _, statErr := os.Stat(path); statErr != nil {
			config.InterviewConfig.QuestionsFile = filepath.Join(filepath.Dir(filename), path)
		}
	}

	return config, nil
}

// Parse разбирает YAML конфигурацию и проверяет ее
func Parse(data []byte) (*Config, error) {
	config := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация конфигурации
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return &config, nil
}

// validateConfig проверяет корректность конфигурации
func validateConfig(config *Config) error {
	if config.InterviewConfig.QuestionsFile == "" {
		return fmt.Errorf("questions_file не может быть пустым")
	}

	if config.InterviewConfig.QuestionCount <= 0 {
		return fmt.Errorf("question_count должно быть больше 0")
	}

	if config.InterviewConfig.PassThreshold <= 0 {
		return fmt.Errorf("pass_threshold должно быть больше 0")
	}

	if config.InterviewConfig.PassThreshold > config.InterviewConfig.QuestionCount {
		return fmt.Errorf("pass_threshold (%d) не может превышать question_count (%d)",
			config.InterviewConfig.PassThreshold, config.InterviewConfig.QuestionCount)
	}

	if config.Persona.InterviewerName == "" {
		return fmt.Errorf("persona.interviewer_name должно быть задано")
	}

	switch config.Judge.OutputFormat {
	case JudgeFormatYesNo, JudgeFormatJSON:
	default:
		return fmt.Errorf("judge.output_format должен быть %q или %q, получен %q",
			JudgeFormatYesNo, JudgeFormatJSON, config.Judge.OutputFormat)
	}

	if config.Capture.AnswerTimeout < 0 {
		return fmt.Errorf("capture.answer_timeout не может быть отрицательным")
	}

	switch config.Speech.Speaker {
	case "console", "none":
	default:
		return fmt.Errorf("speech.speaker должен быть console или none, получен %q", config.Speech.Speaker)
	}

	return nil
}
