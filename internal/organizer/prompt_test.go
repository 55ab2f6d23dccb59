package organizer_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"tidy/internal/logging"
	"tidy/internal/organizer"
	"tidy/internal/testsupport"
)

func TestLinePrompterReturnsWhenCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	p := organizer.NewLinePrompter(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := p.Ask(ctx, "q? ")
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Ask still blocked after cancellation")
	}

	// The interrupted read is not lost: the next Ask receives its line.
	go func() { _, _ = pw.Write([]byte("late\n")) }()
	got, err := p.Ask(context.Background(), "")
	if err != nil {
		t.Fatalf("Ask after cancel: %v", err)
	}
	if got != "late" {
		t.Fatalf("Ask = %q, want %q", got, "late")
	}
}

func TestRunStopsAtPromptWhenCancelled(t *testing.T) {
	dir := t.TempDir()
	testsupport.Tree(t, dir, "readme")

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	var out bytes.Buffer
	s, err := organizer.NewSession(organizer.Options{Directory: dir},
		organizer.NewLinePrompter(pr, &out),
		organizer.WithOutput(&out),
		organizer.WithLogger(logging.NewNop()),
	)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := s.Run(ctx)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run still blocked after cancellation")
	}
	if !strings.Contains(out.String(), "No cleaning was required") {
		t.Fatalf("summary must still be printed:\n%s", out.String())
	}
}
