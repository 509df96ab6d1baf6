package questionbank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileSource банк вопросов в файле. Формат определяется по расширению.
type FileSource struct {
	Path string
}

// NewFileSource создает источник вопросов из файла
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load читает и разбирает весь банк вопросов
func (s *FileSource) Load() ([]Question, error) {
	return Load(s.Path)
}

// Load читает файл банка вопросов (.json, .yaml/.yml, .toml)
func Load(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrMalformedSource, path, err)
	}
	return Parse(data, formatFromPath(path))
}

// Parse разбирает содержимое банка вопросов заданного формата
func Parse(data []byte, format string) ([]Question, error) {
	var (
		questions []Question
		err       error
	)
	switch format {
	case "json":
		questions, err = parseJSON(data)
	case "yaml":
		questions, err = parseYAML(data)
	case "toml":
		questions, err = parseTOML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrMalformedSource, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	if len(questions) == 0 {
		return nil, ErrEmptyPool
	}
	if err := validate(questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	return questions, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

func parseJSON(data []byte) ([]Question, error) {
	var questions []Question
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&questions); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("parse json: trailing data after question list")
	}
	return questions, nil
}

func parseYAML(data []byte) ([]Question, error) {
	var questions []Question
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&questions); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return questions, nil
}

// tomlBank TOML не допускает массив на верхнем уровне, поэтому вопросы лежат в [[questions]]
type tomlBank struct {
	Questions []Question `toml:"questions"`
}

func parseTOML(data []byte) ([]Question, error) {
	var bank tomlBank
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&bank); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	return bank.Questions, nil
}

func validate(questions []Question) error {
	for i, q := range questions {
		if strings.TrimSpace(q.Content) == "" {
			return fmt.Errorf("question %d has empty content", i)
		}
		if strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("question %d has empty answer", i)
		}
	}
	return nil
}
