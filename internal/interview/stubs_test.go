package interview

import (
	"context"
	"fmt"

	"citizen-interview/internal/questionbank"
	"citizen-interview/internal/scoring"
)

// staticSource отдает фиксированный банк вопросов или ошибку
type staticSource struct {
	questions []questionbank.Question
	err       error
}

func (s staticSource) Load() ([]questionbank.Question, error) {
	return s.questions, s.err
}

// recordingNarrator запоминает запросы и может падать на заданном вызове
type recordingNarrator struct {
	questions     []QuestionPrompt
	conclusions   []ConclusionPrompt
	failQuestion  int // номер вызова PhraseQuestion (с 1), на котором вернуть ошибку
	failConclude  bool
	questionError error
}

func (n *recordingNarrator) PhraseQuestion(_ context.Context, prompt QuestionPrompt) (string, error) {
	n.questions = append(n.questions, prompt)
	if n.failQuestion > 0 && len(n.questions) == n.failQuestion {
		if n.questionError != nil {
			return "", n.questionError
		}
		return "", fmt.Errorf("llm unavailable")
	}
	return fmt.Sprintf("Question %d: %s", prompt.Index+1, prompt.Content), nil
}

func (n *recordingNarrator) PhraseConclusion(_ context.Context, prompt ConclusionPrompt) (string, error) {
	n.conclusions = append(n.conclusions, prompt)
	if n.failConclude {
		return "", fmt.Errorf("llm unavailable")
	}
	return fmt.Sprintf("%s: %s with %d correct", prompt.SubjectName, prompt.Outcome, prompt.CorrectCount), nil
}

// scriptedCapture возвращает ответы по порядку
type scriptedCapture struct {
	answers []string
	calls   int
	err     error
}

func (c *scriptedCapture) Capture(_ context.Context) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.calls++
	if c.calls > len(c.answers) {
		return "", nil
	}
	return c.answers[c.calls-1], nil
}

// scriptedJudge отдает заранее заданные вердикты
type scriptedJudge struct {
	verdicts []bool
	calls    int
	err      error
	failAt   int
}

func (j *scriptedJudge) Evaluate(_ context.Context, _, _, _ string) (Verdict, error) {
	j.calls++
	if j.err != nil && (j.failAt == 0 || j.failAt == j.calls) {
		return Verdict{}, j.err
	}
	if j.calls > len(j.verdicts) {
		return Verdict{}, fmt.Errorf("unexpected judge call %d", j.calls)
	}
	correct := j.verdicts[j.calls-1]
	feedback := "incorrect"
	if correct {
		feedback = "correct"
	}
	return Verdict{Correct: correct, Feedback: feedback}, nil
}

// bufferSpeaker собирает реплики
type bufferSpeaker struct {
	lines []string
	err   error
}

func (s *bufferSpeaker) Speak(_ context.Context, text string) error {
	if s.err != nil {
		return s.err
	}
	s.lines = append(s.lines, text)
	return nil
}

// countingRecorder считает события метрик
type countingRecorder struct {
	started, asked, judged, correct, aborted int
	outcomes                                 []scoring.Outcome
}

func (r *countingRecorder) SessionStarted() { r.started++ }
func (r *countingRecorder) QuestionAsked()  { r.asked++ }
func (r *countingRecorder) AnswerJudged(correct bool) {
	r.judged++
	if correct {
		r.correct++
	}
}
func (r *countingRecorder) SessionFinished(outcome scoring.Outcome) {
	r.outcomes = append(r.outcomes, outcome)
}
func (r *countingRecorder) SessionAborted() { r.aborted++ }

func civicsPool(n int) []questionbank.Question {
	pool := make([]questionbank.Question, n)
	for i := range pool {
		pool[i] = questionbank.Question{
			Content: fmt.Sprintf("civics question %d", i),
			Answer:  fmt.Sprintf("answer %d", i),
		}
	}
	return pool
}
