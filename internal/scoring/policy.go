// Package scoring решает, продолжать ли интервью, по числу верных ответов.
// Все функции чистые и не зависят от состояния сессии.
package scoring

import (
	"errors"
	"fmt"
)

// Значения по умолчанию для интервью на гражданство
const (
	DefaultTotal     = 10
	DefaultThreshold = 6
)

// ErrInvalidPolicy возвращается для некорректной пары K/T
var ErrInvalidPolicy = errors.New("invalid scoring policy")

// ErrInvariantViolation означает нарушение 0 <= correct <= index <= total
var ErrInvariantViolation = errors.New("scoring invariant violated")

// Decision результат проверки после очередного ответа
type Decision string

const (
	Continue  Decision = "continue"
	EarlyPass Decision = "early_pass"
	EarlyFail Decision = "early_fail"
	Exhausted Decision = "exhausted"
)

// Outcome итог интервью
type Outcome string

const (
	Undetermined Outcome = "undetermined"
	Passed       Outcome = "passed"
	Failed       Outcome = "failed"
)

// IsTerminal сообщает, завершает ли решение цикл вопросов
func (d Decision) IsTerminal() bool {
	return d != Continue
}

// Outcome переводит решение в итог интервью
func (d Decision) Outcome(correct, threshold int) Outcome {
	switch d {
	case EarlyPass:
		return Passed
	case EarlyFail:
		return Failed
	case Exhausted:
		return FinalOutcome(correct, threshold)
	default:
		return Undetermined
	}
}

// DecideContinue решает судьбу интервью после index отвеченных вопросов из total.
// Когда вопросы закончились, возвращается Exhausted, а итог считает FinalOutcome.
func DecideContinue(correct, index, total, threshold int) Decision {
	if index >= total {
		return Exhausted
	}
	if correct >= threshold {
		return EarlyPass
	}
	if correct+(total-index) < threshold {
		return EarlyFail
	}
	return Continue
}

// FinalOutcome итог по числу верных ответов
func FinalOutcome(correct, threshold int) Outcome {
	if correct >= threshold {
		return Passed
	}
	return Failed
}

// Policy параметры оценки: сколько вопросов задается и сколько нужно для сдачи
type Policy struct {
	Total     int
	Threshold int
}

// Default возвращает политику 6 из 10
func Default() Policy {
	return Policy{Total: DefaultTotal, Threshold: DefaultThreshold}
}

// Validate проверяет 0 < Threshold <= Total
func (p Policy) Validate() error {
	if p.Total <= 0 {
		return fmt.Errorf("%w: total must be positive, got %d", ErrInvalidPolicy, p.Total)
	}
	if p.Threshold <= 0 || p.Threshold > p.Total {
		return fmt.Errorf("%w: threshold must be in 1..%d, got %d", ErrInvalidPolicy, p.Total, p.Threshold)
	}
	return nil
}

// Decide как DecideContinue, но с проверкой инвариантов счетчиков
func (p Policy) Decide(correct, index int) (Decision, error) {
	if correct < 0 || correct > index || index > p.Total {
		return "", fmt.Errorf("%w: correct=%d index=%d total=%d", ErrInvariantViolation, correct, index, p.Total)
	}
	return DecideContinue(correct, index, p.Total, p.Threshold), nil
}

// Remaining число еще не заданных вопросов
func (p Policy) Remaining(index int) int {
	if index >= p.Total {
		return 0
	}
	return p.Total - index
}
