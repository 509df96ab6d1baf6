package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`interview:
  question_count: 3
  pass_threshold: 2
`))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.GetQuestionCount())
	assert.Equal(t, 2, cfg.GetPassThreshold())
	assert.Equal(t, "config/questions.json", cfg.GetQuestionsFile())
	assert.Equal(t, "Lucas", cfg.Persona.InterviewerName)
	assert.Equal(t, JudgeFormatYesNo, cfg.Judge.OutputFormat)
	assert.Equal(t, "console", cfg.Speech.Speaker)
}

func TestParse_EmptyDocumentUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.GetQuestionCount())
	assert.Equal(t, 6, cfg.GetPassThreshold())
}

func TestParse_FullDocument(t *testing.T) {
	cfg, err := Parse([]byte(`interview:
  questions_file: bank.toml
  question_count: 20
  pass_threshold: 12
persona:
  interviewer_name: Maria
  agency: USCIS field office
  interview_title: naturalization interview
judge:
  output_format: json
  strict: false
capture:
  prompt: "> "
  answer_timeout: 45s
speech:
  speaker: none
`))
	require.NoError(t, err)

	assert.Equal(t, "bank.toml", cfg.GetQuestionsFile())
	assert.Equal(t, "Maria", cfg.Persona.InterviewerName)
	assert.Equal(t, JudgeFormatJSON, cfg.Judge.OutputFormat)
	assert.False(t, cfg.Judge.Strict)
	assert.Equal(t, 45*time.Second, cfg.Capture.AnswerTimeout)
	assert.Equal(t, "none", cfg.Speech.Speaker)
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"threshold above count": "interview:\n  question_count: 3\n  pass_threshold: 4\n",
		"zero count":            "interview:\n  question_count: 0\n",
		"zero threshold":        "interview:\n  pass_threshold: 0\n",
		"unknown judge format":  "judge:\n  output_format: xml\n",
		"unknown speaker":       "speech:\n  speaker: tts\n",
		"empty persona":         "persona:\n  interviewer_name: \"\"\n",
		"negative timeout":      "capture:\n  answer_timeout: -1s\n",
		"unknown field":         "interview:\n  blocks: 3\n",
		"broken yaml":           "interview: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ResolvesQuestionsFileNextToConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interview:\n  questions_file: my-bank.json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my-bank.json"), cfg.GetQuestionsFile())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("LLM_TEMPERATURE", "")
	t.Setenv("LLM_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := LoadAppConfig()
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 0.5, cfg.LLM.Temperature)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadAppConfig_FromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Azure")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("AZURE_OPENAI_API_KEY", "secret")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT", "gpt-4o")
	t.Setenv("LLM_MAX_TOKENS", "250")
	t.Setenv("LLM_TIMEOUT", "30s")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_REQUESTS_PER_SECOND", "not-a-number")

	cfg := LoadAppConfig()
	assert.Equal(t, ProviderAzure, cfg.LLM.Provider)
	assert.Equal(t, 250, cfg.LLM.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 2.0, cfg.LLM.RequestsPerSecond)
	require.NoError(t, cfg.LLM.ValidateConfig())
	assert.Equal(t, "gpt-4o", cfg.LLM.GetModelInfo()["model"])
}

func TestLLMConfig_Validate(t *testing.T) {
	valid := LLMConfig{
		Provider:    ProviderOpenAI,
		APIKey:      "key",
		Model:       "gpt-4o-mini",
		MaxTokens:   100,
		Temperature: 0.5,
		Timeout:     time.Second,
	}
	require.NoError(t, valid.ValidateConfig())

	atLimit := valid
	atLimit.MaxTokens = MaxTokensLimit
	require.NoError(t, atLimit.ValidateConfig())

	overLimit := atLimit
	overLimit.MaxTokens++
	assert.Error(t, overLimit.ValidateConfig())

	mutations := map[string]func(c *LLMConfig){
		"missing key":        func(c *LLMConfig) { c.APIKey = "" },
		"unknown provider":   func(c *LLMConfig) { c.Provider = "gemini" },
		"azure without keys": func(c *LLMConfig) { c.Provider = ProviderAzure },
		"zero tokens":        func(c *LLMConfig) { c.MaxTokens = 0 },
		"hot temperature":    func(c *LLMConfig) { c.Temperature = 2.5 },
		"zero timeout":       func(c *LLMConfig) { c.Timeout = 0 },
		"negative rate":      func(c *LLMConfig) { c.RequestsPerSecond = -1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.ValidateConfig())
		})
	}
}
