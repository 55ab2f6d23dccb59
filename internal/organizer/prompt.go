package organizer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tidy/internal/logging"
)

// Prompter asks the user a question and returns the answer line.
// Implementations return io.EOF once no more answers are available.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// LinePrompter reads answers line by line from a reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
	// pending carries the result of a read that outlived a cancelled Ask.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLinePrompter writes questions to out and reads answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the next line without its line terminator.
// Cancelling ctx returns ctx.Err() immediately; the interrupted read is kept
// and its line is handed to the next Ask.
func (p *LinePrompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if question != "" {
		fmt.Fprint(p.out, question)
	}
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && res.line != "" {
				return strings.TrimRight(res.line, "\r\n"), nil
			}
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

type answerState int

const (
	awaitingChoice answerState = iota
	validated
	retry
)

// askUntilValid repeats question until parse accepts the answer. Answers that
// parse rejects with ErrInvalidInput are reported and the question is asked
// again with no retry limit; any other parse error ends the loop.
func askUntilValid[T any](ctx context.Context, s *Session, question string, parse func(string) (T, error)) (T, error) {
	var value T
	for state := awaitingChoice; state != validated; {
		answer, err := s.prompter.Ask(ctx, question)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return value, Wrap(ErrPromptClosed, "prompt", firstLine(question), nil)
			}
			return value, err
		}
		parsed, err := parse(answer)
		switch {
		case err == nil:
			value = parsed
			state = validated
		case errors.Is(err, ErrInvalidInput):
			s.logger.Debug("answer rejected",
				logging.String("question", firstLine(question)),
				logging.String("answer", answer),
				logging.Error(err),
			)
			s.printf("Invalid input\n")
			state = retry
		default:
			return value, err
		}
	}
	return value, nil
}

func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
