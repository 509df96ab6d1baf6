package interviewer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// ErrInputClosed ввод закончился до ответа
var ErrInputClosed = errors.New("input closed")

type line struct {
	text string
	err  error
}

// ConsoleCapture читает ответы построчно. Чтение идет в отдельной горутине,
// поэтому Capture можно прервать контекстом или таймаутом.
type ConsoleCapture struct {
	reader  *bufio.Reader
	out     io.Writer
	prompt  string
	timeout time.Duration

	once  sync.Once
	lines chan line
	// stale сколько ответов опоздало после таймаута; они не относятся к следующему вопросу
	stale  int
	closed bool
}

func NewConsoleCapture(in io.Reader, out io.Writer, prompt string, timeout time.Duration) *ConsoleCapture {
	return &ConsoleCapture{
		reader:  bufio.NewReader(in),
		out:     out,
		prompt:  prompt,
		timeout: timeout,
		lines:   make(chan line, 1),
	}
}

func (c *ConsoleCapture) start() {
	go func() {
		defer close(c.lines)
		for {
			text, err := c.reader.ReadString('\n')
			if err != nil {
				if text != "" && errors.Is(err, io.EOF) {
					c.lines <- line{text: text}
				}
				if !errors.Is(err, io.EOF) {
					c.lines <- line{err: err}
				}
				return
			}
			c.lines <- line{text: text}
		}
	}()
}

// Capture возвращает очередную строку без пробелов по краям.
// По истечении таймаута ответ считается пустым, а опоздавшая строка
// отбрасывается в начале следующего вызова.
func (c *ConsoleCapture) Capture(ctx context.Context) (string, error) {
	c.once.Do(c.start)

	c.discardStale()
	if c.closed {
		return "", ErrInputClosed
	}

	if c.out != nil && c.prompt != "" {
		fmt.Fprint(c.out, c.prompt)
	}

	var timeout <-chan time.Time
	if c.timeout > 0 {
		timer := time.NewTimer(c.timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timeout:
		c.stale++
		if c.out != nil {
			fmt.Fprintln(c.out)
		}
		return "", nil
	case l, ok := <-c.lines:
		if !ok {
			c.closed = true
			return "", ErrInputClosed
		}
		if l.err != nil {
			return "", fmt.Errorf("read answer: %w", l.err)
		}
		return strings.TrimSpace(l.text), nil
	}
}

// discardStale выбрасывает уже пришедшие строки, опоздавшие к прошлым вопросам
func (c *ConsoleCapture) discardStale() {
	for ; c.stale > 0; c.stale-- {
		select {
		case _, ok := <-c.lines:
			if !ok {
				c.closed = true
				c.stale = 0
				return
			}
		default:
			c.stale = 0
			return
		}
	}
}

// ConsoleSpeaker печатает реплики интервьюера
type ConsoleSpeaker struct {
	out    io.Writer
	prefix string
}

func NewConsoleSpeaker(out io.Writer, prefix string) *ConsoleSpeaker {
	return &ConsoleSpeaker{out: out, prefix: prefix}
}

func (s *ConsoleSpeaker) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.out, "%s%s\n", s.prefix, text)
	return err
}
