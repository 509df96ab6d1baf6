// Package interview проводит интервью: автомат состояний поверх банка вопросов,
// рассказчика, захвата ответа и проверяющего.
package interview

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"citizen-interview/internal/questionbank"
	"citizen-interview/internal/scoring"
)

// Settings параметры одного интервью
type Settings struct {
	SubjectName string
	Policy      scoring.Policy
}

// Dependencies внешние участники интервью. Speaker необязателен.
type Dependencies struct {
	Source   QuestionSource
	Narrator Narrator
	Capture  AnswerCapture
	Judge    AnswerJudge
	Speaker  Speaker
}

// Recorder получает события интервью для метрик
type Recorder interface {
	SessionStarted()
	QuestionAsked()
	AnswerJudged(correct bool)
	SessionFinished(outcome scoring.Outcome)
	SessionAborted()
}

type nopRecorder struct{}

func (nopRecorder) SessionStarted()                 {}
func (nopRecorder) QuestionAsked()                  {}
func (nopRecorder) AnswerJudged(bool)               {}
func (nopRecorder) SessionFinished(scoring.Outcome) {}
func (nopRecorder) SessionAborted()                 {}

// Option настраивает Machine
type Option func(*Machine)

// WithLogger задает логгер
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithRecorder задает получателя метрик
func WithRecorder(recorder Recorder) Option {
	return func(m *Machine) {
		if recorder != nil {
			m.recorder = recorder
		}
	}
}

// WithRand задает генератор для выборки вопросов
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) {
		m.rng = rng
	}
}

// WithSessionID задает генератор идентификаторов сессии
func WithSessionID(newID func() string) Option {
	return func(m *Machine) {
		if newID != nil {
			m.newID = newID
		}
	}
}

// Machine автомат одного интервью. Запускается один раз.
type Machine struct {
	settings Settings
	deps     Dependencies
	logger   zerolog.Logger
	recorder Recorder
	rng      *rand.Rand
	newID    func() string

	state    State
	session  *Session
	decision scoring.Decision
	previous *PreviousTurn
	closing  string
	started  bool
}

// New создает автомат интервью
func New(settings Settings, deps Dependencies, opts ...Option) (*Machine, error) {
	if strings.TrimSpace(settings.SubjectName) == "" {
		return nil, fmt.Errorf("subject name is required")
	}
	if err := settings.Policy.Validate(); err != nil {
		return nil, err
	}
	switch {
	case deps.Source == nil:
		return nil, fmt.Errorf("question source is required")
	case deps.Narrator == nil:
		return nil, fmt.Errorf("narrator is required")
	case deps.Capture == nil:
		return nil, fmt.Errorf("answer capture is required")
	case deps.Judge == nil:
		return nil, fmt.Errorf("answer judge is required")
	}

	m := &Machine{
		settings: settings,
		deps:     deps,
		logger:   zerolog.Nop(),
		recorder: nopRecorder{},
		newID:    func() string { return uuid.New().String() },
		state:    StateSetup,
		decision: scoring.Continue,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// State текущий узел автомата
func (m *Machine) State() State {
	return m.state
}

// Session копия состояния сессии; nil, пока Setup не завершился успешно
func (m *Machine) Session() *Session {
	if m.session == nil {
		return nil
	}
	return m.session.snapshot()
}

// Run проводит интервью от Setup до Concluded.
// Любая ошибка прерывает сессию без заключительного слова.
func (m *Machine) Run(ctx context.Context) (*Result, error) {
	if m.started {
		return nil, ErrMachineUsed
	}
	m.started = true

	for m.state != StateConcluded {
		if err := m.step(ctx); err != nil {
			// до успешного Setup сессии нет, считать нечего
			if m.session != nil {
				m.recorder.SessionAborted()
			}
			m.logger.Error().Err(err).Str("node", string(m.state)).Msg("interview aborted")
			return nil, err
		}
	}
	return m.result(), nil
}

// step выполняет текущий узел и переходит к следующему
func (m *Machine) step(ctx context.Context) error {
	var err error
	switch m.state {
	case StateSetup:
		err = m.setup()
	case StateAsking:
		err = m.ask(ctx)
	case StateAwaitingAnswer:
		err = m.awaitAnswer(ctx)
	case StateJudging:
		err = m.judge(ctx)
	case StateConcluding:
		m.conclude(ctx)
	default:
		return newSessionError(InvariantViolation, m.state, m.index(), fmt.Errorf("%w: unknown state", ErrInvariantViolation))
	}
	if err != nil {
		return err
	}

	next := transition(m.state, m.decision)
	m.logger.Debug().
		Str("from", string(m.state)).
		Str("to", string(next)).
		Int("index", m.index()).
		Msg("interview transition")
	m.state = next
	return nil
}

// transition фиксированная топология интервью
func transition(from State, decision scoring.Decision) State {
	switch from {
	case StateSetup:
		return StateAsking
	case StateAsking:
		return StateAwaitingAnswer
	case StateAwaitingAnswer:
		return StateJudging
	case StateJudging:
		if decision.IsTerminal() {
			return StateConcluding
		}
		return StateAsking
	default:
		return StateConcluded
	}
}

func (m *Machine) setup() error {
	pool, err := m.deps.Source.Load()
	if err != nil {
		return newSessionError(ConfigurationError, StateSetup, 0, err)
	}
	questions, err := questionbank.Sample(pool, m.settings.Policy.Total, m.rng)
	if err != nil {
		return newSessionError(ConfigurationError, StateSetup, 0, err)
	}

	m.session = newSession(m.newID(), strings.TrimSpace(m.settings.SubjectName), questions)
	m.logger = m.logger.With().Str("session_id", m.session.ID).Logger()
	m.recorder.SessionStarted()
	m.logger.Info().
		Int("pool", len(pool)).
		Int("questions", len(questions)).
		Int("threshold", m.settings.Policy.Threshold).
		Msg("interview started")
	return nil
}

func (m *Machine) ask(ctx context.Context) error {
	s := m.session
	if s.Outcome != scoring.Undetermined {
		return m.invariant(StateAsking, "question asked after outcome was set")
	}
	question, ok := s.CurrentQuestion()
	if !ok {
		return m.invariant(StateAsking, "no question left to ask")
	}
	if err := ctx.Err(); err != nil {
		return collaboratorError(StateAsking, s.CurrentIndex, ErrNarrationFailure, err)
	}

	text, err := m.deps.Narrator.PhraseQuestion(ctx, QuestionPrompt{
		SubjectName: s.SubjectName,
		Index:       s.CurrentIndex,
		Total:       s.Total(),
		Content:     question.Content,
		Previous:    m.previous,
	})
	if err != nil {
		return collaboratorError(StateAsking, s.CurrentIndex, ErrNarrationFailure, err)
	}
	if m.deps.Speaker != nil {
		if err := m.deps.Speaker.Speak(ctx, text); err != nil {
			return collaboratorError(StateAsking, s.CurrentIndex, ErrNarrationFailure, err)
		}
	} else {
		m.logger.Debug().Int("index", s.CurrentIndex).Str("text", text).Msg("question narrated")
	}
	m.recorder.QuestionAsked()
	return nil
}

func (m *Machine) awaitAnswer(ctx context.Context) error {
	answer, err := m.deps.Capture.Capture(ctx)
	if err != nil {
		return collaboratorError(StateAwaitingAnswer, m.session.CurrentIndex, ErrAnswerCaptureFailure, err)
	}
	m.session.LastAnswer = &answer
	return nil
}

func (m *Machine) judge(ctx context.Context) error {
	s := m.session
	question, ok := s.CurrentQuestion()
	if !ok || s.LastAnswer == nil {
		return m.invariant(StateJudging, "nothing to judge")
	}
	answer := *s.LastAnswer

	verdict, err := m.deps.Judge.Evaluate(ctx, question.Content, answer, question.Answer)
	if err != nil {
		if errors.Is(err, ErrJudgeResponseMalformed) {
			return collaboratorError(StateJudging, s.CurrentIndex, ErrJudgeResponseMalformed, err)
		}
		return collaboratorError(StateJudging, s.CurrentIndex, ErrJudgeFailure, err)
	}

	if verdict.Correct {
		s.CorrectCount++
	}
	s.CurrentIndex++
	m.recorder.AnswerJudged(verdict.Correct)
	m.previous = &PreviousTurn{
		Question:  question.Content,
		Answer:    answer,
		Reference: question.Answer,
		Correct:   verdict.Correct,
		Feedback:  verdict.Feedback,
	}

	if !s.checkInvariants() {
		return m.invariant(StateJudging, "counters out of range")
	}
	decision, err := m.settings.Policy.Decide(s.CorrectCount, s.CurrentIndex)
	if err != nil {
		return newSessionError(InvariantViolation, StateJudging, s.CurrentIndex, fmt.Errorf("%w: %w", ErrInvariantViolation, err))
	}
	m.decision = decision

	m.logger.Debug().
		Bool("correct", verdict.Correct).
		Int("correct_count", s.CorrectCount).
		Int("index", s.CurrentIndex).
		Str("decision", string(decision)).
		Msg("answer judged")

	if decision.IsTerminal() {
		outcome := decision.Outcome(s.CorrectCount, m.settings.Policy.Threshold)
		if !s.setOutcome(outcome) {
			return m.invariant(StateJudging, "outcome already set")
		}
		m.recorder.SessionFinished(outcome)
		m.logger.Info().
			Str("outcome", string(outcome)).
			Str("decision", string(decision)).
			Int("correct_count", s.CorrectCount).
			Int("asked", s.CurrentIndex).
			Msg("interview decided")
	}
	return nil
}

// conclude заключительное слово по возможности; итог уже зафиксирован и не теряется
func (m *Machine) conclude(ctx context.Context) {
	s := m.session
	text, err := m.deps.Narrator.PhraseConclusion(ctx, ConclusionPrompt{
		SubjectName:  s.SubjectName,
		Outcome:      s.Outcome,
		CorrectCount: s.CorrectCount,
		Asked:        s.CurrentIndex,
		Total:        s.Total(),
	})
	if err != nil {
		m.logger.Warn().Err(err).Msg("closing statement failed")
		return
	}
	m.closing = text
	if m.deps.Speaker != nil {
		if err := m.deps.Speaker.Speak(ctx, text); err != nil {
			m.logger.Warn().Err(err).Msg("closing statement not delivered")
		}
	}
}

func (m *Machine) invariant(node State, reason string) error {
	return newSessionError(InvariantViolation, node, m.index(), fmt.Errorf("%w: %s", ErrInvariantViolation, reason))
}

func (m *Machine) index() int {
	if m.session == nil {
		return 0
	}
	return m.session.CurrentIndex
}

func (m *Machine) result() *Result {
	s := m.session
	return &Result{
		SessionID:      s.ID,
		SubjectName:    s.SubjectName,
		Outcome:        s.Outcome,
		Decision:       m.decision,
		CorrectCount:   s.CorrectCount,
		QuestionsAsked: s.CurrentIndex,
		TotalQuestions: s.Total(),
		Threshold:      m.settings.Policy.Threshold,
		Closing:        m.closing,
	}
}
