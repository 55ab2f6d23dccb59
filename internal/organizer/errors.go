package organizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks an answer that failed validation. It never ends a
	// run; the question is asked again.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFilesystemUnavailable marks a target directory that cannot be organized.
	ErrFilesystemUnavailable = errors.New("filesystem unavailable")
	// ErrMoveFailed marks a failed rename or folder creation; the run aborts.
	ErrMoveFailed = errors.New("move failed")
	// ErrPromptClosed reports that the answer source ran dry.
	ErrPromptClosed = errors.New("prompt closed")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker so callers can classify it with errors.Is.
func Wrap(marker error, operation, message string, err error) error {
	if marker == nil {
		marker = ErrMoveFailed
	}
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	detail := strings.Join(parts, ": ")
	if detail == "" {
		detail = "organizer failure"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
