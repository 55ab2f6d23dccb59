package logs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"tidy/internal/logs"
)

func TestLatestPicksNewestDailyFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"tidy-20260101.log", "tidy-20261018.log", "tidy-20250505.log", "other.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	got, err := logs.Latest(dir, "tidy-*.log")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if filepath.Base(got) != "tidy-20261018.log" {
		t.Fatalf("Latest = %s", got)
	}

	if _, err := logs.Latest(t.TempDir(), "tidy-*.log"); !errors.Is(err, logs.ErrNoLogs) {
		t.Fatalf("expected ErrNoLogs, got %v", err)
	}
}

func TestLastReturnsTrailingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidy.log")
	if err := os.WriteFile(path, []byte("a\nb\r\nc\npartial"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	lines, offset, err := logs.Last(path, 2)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if len(lines) != 2 || lines[0] != "b" || lines[1] != "c" {
		t.Fatalf("unexpected lines: %#v", lines)
	}
	if offset != int64(len("a\nb\r\nc\n")) {
		t.Fatalf("offset = %d, partial line must stay unread", offset)
	}

	lines, _, err = logs.Last(path, 10)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if len(lines) != 3 || lines[0] != "a" {
		t.Fatalf("unexpected lines: %#v", lines)
	}
}

func TestSinceRestartsAfterTruncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidy.log")
	if err := os.WriteFile(path, []byte("new\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	lines, offset, err := logs.Since(path, 1000)
	if err != nil {
		t.Fatalf("Since: %v", err)
	}
	if len(lines) != 1 || lines[0] != "new" || offset != 4 {
		t.Fatalf("unexpected result: %#v offset=%d", lines, offset)
	}
}

func TestFollowEmitsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidy.log")
	if err := os.WriteFile(path, []byte("start\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	_, offset, err := logs.Last(path, 1)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var mu sync.Mutex
	var got []string
	seen := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- logs.Follow(ctx, path, offset, 20*time.Millisecond, func(line string) {
			mu.Lock()
			got = append(got, line)
			mu.Unlock()
			if line == "later" {
				close(seen)
			}
		})
	}()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open append: %v", err)
	}
	if _, err := f.WriteString("later\n"); err != nil {
		t.Fatalf("append log: %v", err)
	}
	_ = f.Close()

	select {
	case <-seen:
	case <-time.After(5 * time.Second):
		t.Fatal("follow did not emit the appended line")
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Follow: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != "later" {
		t.Fatalf("unexpected lines: %#v", got)
	}
}
