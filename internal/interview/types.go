package interview

import (
	"context"

	"citizen-interview/internal/questionbank"
	"citizen-interview/internal/scoring"
)

// State узел автомата интервью
type State string

const (
	StateSetup          State = "setup"
	StateAsking         State = "asking"
	StateAwaitingAnswer State = "awaiting_answer"
	StateJudging        State = "judging"
	StateConcluding     State = "concluding"
	StateConcluded      State = "concluded"
)

// QuestionSource источник банка вопросов
type QuestionSource interface {
	Load() ([]questionbank.Question, error)
}

// PreviousTurn результат предыдущего вопроса, нужен для короткого отзыва интервьюера
type PreviousTurn struct {
	Question  string
	Answer    string
	Reference string
	Correct   bool
	Feedback  string
}

// QuestionPrompt данные для формулировки очередного вопроса
type QuestionPrompt struct {
	SubjectName string
	Index       int
	Total       int
	Content     string
	Previous    *PreviousTurn
}

// ConclusionPrompt данные для заключительного слова
type ConclusionPrompt struct {
	SubjectName  string
	Outcome      scoring.Outcome
	CorrectCount int
	Asked        int
	Total        int
}

// Verdict решение проверяющего по одному ответу
type Verdict struct {
	Correct  bool
	Feedback string
}

// Narrator формулирует реплики интервьюера. Состояние сессии не меняет.
type Narrator interface {
	PhraseQuestion(ctx context.Context, prompt QuestionPrompt) (string, error)
	PhraseConclusion(ctx context.Context, prompt ConclusionPrompt) (string, error)
}

// AnswerCapture получает ответ собеседника. Пустая строка тоже ответ.
type AnswerCapture interface {
	Capture(ctx context.Context) (string, error)
}

// AnswerJudge сверяет ответ с эталоном
type AnswerJudge interface {
	Evaluate(ctx context.Context, question, answer, reference string) (Verdict, error)
}

// Speaker доносит реплику до собеседника (консоль, синтез речи)
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Result итог завершенного интервью
type Result struct {
	SessionID      string           `json:"session_id"`
	SubjectName    string           `json:"subject_name"`
	Outcome        scoring.Outcome  `json:"outcome"`
	Decision       scoring.Decision `json:"decision"`
	CorrectCount   int              `json:"correct_count"`
	QuestionsAsked int              `json:"questions_asked"`
	TotalQuestions int              `json:"total_questions"`
	Threshold      int              `json:"threshold"`
	Closing        string           `json:"closing,omitempty"`
}
