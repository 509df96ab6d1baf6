package questionbank

import "errors"

// Question один вопрос банка и эталонный ответ
type Question struct {
	Content string `json:"content" yaml:"content" toml:"content"`
	Answer  string `json:"answer" yaml:"answer" toml:"answer"`
}

// Ошибки банка вопросов
var (
	// ErrEmptyPool банк не содержит ни одного вопроса
	ErrEmptyPool = errors.New("question pool is empty")

	// ErrInsufficientQuestions в банке меньше вопросов, чем нужно для интервью
	ErrInsufficientQuestions = errors.New("not enough questions in pool")

	// ErrMalformedSource источник не читается или не разбирается в вопросы
	ErrMalformedSource = errors.New("malformed question source")

	// ErrInvalidCount запрошено неположительное число вопросов
	ErrInvalidCount = errors.New("question count must be positive")
)
