package interview

import (
	"errors"
	"fmt"
)

// Ошибки внешних участников интервью
var (
	ErrNarrationFailure       = errors.New("narration failed")
	ErrAnswerCaptureFailure   = errors.New("answer capture failed")
	ErrJudgeFailure           = errors.New("judge call failed")
	ErrJudgeResponseMalformed = errors.New("judge response malformed")
	ErrInvariantViolation     = errors.New("interview invariant violated")
	ErrMachineUsed            = errors.New("interview machine already ran")
)

// ErrorKind класс ошибки сессии
type ErrorKind string

const (
	// ConfigurationError плохой или отсутствующий банк вопросов, без повторов
	ConfigurationError ErrorKind = "configuration"
	// CollaboratorFailure ошибка рассказчика, захвата ответа или проверяющего
	CollaboratorFailure ErrorKind = "collaborator"
	// InvariantViolation внутренняя ошибка счетчиков
	InvariantViolation ErrorKind = "invariant"
)

// SessionError прерывает сессию. Содержит узел и номер вопроса, на котором все сломалось.
type SessionError struct {
	Kind  ErrorKind
	Node  State
	Index int
	Err   error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("interview %s error at %s (question %d): %v", e.Kind, e.Node, e.Index, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

func newSessionError(kind ErrorKind, node State, index int, err error) *SessionError {
	return &SessionError{Kind: kind, Node: node, Index: index, Err: err}
}

// collaboratorError оборачивает ошибку участника в sentinel, не теряя исходную причину
func collaboratorError(node State, index int, sentinel, err error) *SessionError {
	if errors.Is(err, sentinel) {
		return newSessionError(CollaboratorFailure, node, index, err)
	}
	return newSessionError(CollaboratorFailure, node, index, fmt.Errorf("%w: %w", sentinel, err))
}
