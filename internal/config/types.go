package config

import "time"

// Config представляет конфигурацию интервью
type Config struct {
	InterviewConfig InterviewConfig `yaml:"interview"`
	Persona         Persona         `yaml:"persona"`
	Judge           JudgeConfig     `yaml:"judge"`
	Capture         CaptureConfig   `yaml:"capture"`
	Speech          SpeechConfig    `yaml:"speech"`
}

// InterviewConfig содержит общие настройки интервью
type InterviewConfig struct {
	QuestionsFile string `yaml:"questions_file"`
	QuestionCount int    `yaml:"question_count"`
	PassThreshold int    `yaml:"pass_threshold"`
}

// Persona описывает интервьюера. Подставляется в промпты.
type Persona struct {
	InterviewerName string `yaml:"interviewer_name"`
	Agency          string `yaml:"agency"`
	InterviewTitle  string `yaml:"interview_title"`
	Style           string `yaml:"style"`
}

// Форматы ответа проверяющего
const (
	JudgeFormatYesNo = "yes_no"
	JudgeFormatJSON  = "json"
)

// JudgeConfig форма ответа проверяющего
type JudgeConfig struct {
	OutputFormat string `yaml:"output_format"`
	Strict       bool   `yaml:"strict"`
}

// CaptureConfig настройки приема ответа
type CaptureConfig struct {
	Prompt        string        `yaml:"prompt"`
	AnswerTimeout time.Duration `yaml:"answer_timeout"`
}

// SpeechConfig способ донести реплики интервьюера
type SpeechConfig struct {
	Speaker string `yaml:"speaker"`
	Prefix  string `yaml:"prefix"`
}

// Default конфигурация интервью на гражданство США: 10 вопросов, 6 для сдачи
func Default() Config {
	return Config{
		InterviewConfig: InterviewConfig{
			QuestionsFile: "config/questions.json",
			QuestionCount: 10,
			PassThreshold: 6,
		},
		Persona: Persona{
			InterviewerName: "Lucas",
			Agency:          "USCIS",
			InterviewTitle:  "US citizenship interview",
			Style:           "Be professional, and human natural.",
		},
		Judge: JudgeConfig{
			OutputFormat: JudgeFormatYesNo,
			Strict:       true,
		},
		Capture: CaptureConfig{
			Prompt: "Enter your answer here: ",
		},
		Speech: SpeechConfig{
			Speaker: "console",
			Prefix:  "Interviewer says: ",
		},
	}
}

// Методы для удобного доступа к конфигурации
func (c *Config) GetQuestionCount() int {
	return c.InterviewConfig.QuestionCount
}

func (c *Config) GetPassThreshold() int {
	return c.InterviewConfig.PassThreshold
}

func (c *Config) GetQuestionsFile() string {
	return c.InterviewConfig.QuestionsFile
}
