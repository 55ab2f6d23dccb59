package testsupport

import (
	"context"
	"io"
	"sync"
)

// Script answers prompts from a fixed list and records every question asked.
// Once the answers run out Ask returns io.EOF.
type Script struct {
	mu        sync.Mutex
	answers   []string
	questions []string
}

// NewScript returns a prompter that replies with answers in order.
func NewScript(answers ...string) *Script {
	return &Script{answers: append([]string(nil), answers...)}
}

// Ask implements organizer.Prompter.
func (s *Script) Ask(ctx context.Context, question string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.questions = append(s.questions, question)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// Questions returns the questions asked so far.
func (s *Script) Questions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.questions...)
}

// Remaining returns the number of unused answers.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}
