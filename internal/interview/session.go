package interview

import (
	"citizen-interview/internal/questionbank"
	"citizen-interview/internal/scoring"
)

// Session состояние одного интервью. Меняется только узлами автомата, строго по очереди.
type Session struct {
	ID           string
	SubjectName  string
	Questions    []questionbank.Question
	CurrentIndex int
	CorrectCount int
	LastAnswer   *string
	Outcome      scoring.Outcome
}

func newSession(id, name string, questions []questionbank.Question) *Session {
	return &Session{
		ID:          id,
		SubjectName: name,
		Questions:   questions,
		Outcome:     scoring.Undetermined,
	}
}

// CurrentQuestion вопрос, который задается сейчас
func (s *Session) CurrentQuestion() (questionbank.Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return questionbank.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Total число вопросов в сессии (K)
func (s *Session) Total() int {
	return len(s.Questions)
}

// checkInvariants 0 <= correct <= index <= K
func (s *Session) checkInvariants() bool {
	return s.CorrectCount >= 0 &&
		s.CorrectCount <= s.CurrentIndex &&
		s.CurrentIndex <= len(s.Questions)
}

// setOutcome итог записывается один раз
func (s *Session) setOutcome(outcome scoring.Outcome) bool {
	if s.Outcome != scoring.Undetermined || outcome == scoring.Undetermined {
		return false
	}
	s.Outcome = outcome
	return true
}

// snapshot копия для чтения снаружи
func (s *Session) snapshot() *Session {
	cp := *s
	cp.Questions = append([]questionbank.Question(nil), s.Questions...)
	if s.LastAnswer != nil {
		answer := *s.LastAnswer
		cp.LastAnswer = &answer
	}
	return &cp
}
