package metrics

import (
	"sync"
	"time"

	"citizen-interview/internal/scoring"
)

type Metrics struct {
	mu                 sync.RWMutex
	SessionsStarted    int64
	SessionsPassed     int64
	SessionsFailed     int64
	SessionsAborted    int64
	QuestionsAsked     int64
	AnswersCorrect     int64
	AnswersJudged      int64
	APICallsTotal      int64
	APICallsSuccessful int64
	LastUpdateTime     time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) SessionStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) QuestionAsked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuestionsAsked++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) AnswerJudged(correct bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswersJudged++
	if correct {
		m.AnswersCorrect++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) SessionFinished(outcome scoring.Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch outcome {
	case scoring.Passed:
		m.SessionsPassed++
	case scoring.Failed:
		m.SessionsFailed++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) SessionAborted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsAborted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAPICall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.APICallsTotal++
	if success {
		m.APICallsSuccessful++
	}
	m.LastUpdateTime = time.Now()
}

// Snapshot копия счетчиков без мьютекса
type Snapshot struct {
	SessionsStarted    int64     `json:"sessions_started"`
	SessionsPassed     int64     `json:"sessions_passed"`
	SessionsFailed     int64     `json:"sessions_failed"`
	SessionsAborted    int64     `json:"sessions_aborted"`
	QuestionsAsked     int64     `json:"questions_asked"`
	AnswersCorrect     int64     `json:"answers_correct"`
	AnswersJudged      int64     `json:"answers_judged"`
	APICallsTotal      int64     `json:"api_calls_total"`
	APICallsSuccessful int64     `json:"api_calls_successful"`
	LastUpdateTime     time.Time `json:"last_update_time"`
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		SessionsStarted:    m.SessionsStarted,
		SessionsPassed:     m.SessionsPassed,
		SessionsFailed:     m.SessionsFailed,
		SessionsAborted:    m.SessionsAborted,
		QuestionsAsked:     m.QuestionsAsked,
		AnswersCorrect:     m.AnswersCorrect,
		AnswersJudged:      m.AnswersJudged,
		APICallsTotal:      m.APICallsTotal,
		APICallsSuccessful: m.APICallsSuccessful,
		LastUpdateTime:     m.LastUpdateTime,
	}
}
