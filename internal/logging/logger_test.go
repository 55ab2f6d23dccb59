package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tidy/internal/config"
	"tidy/internal/logging"
)

func TestNewFromConfigWritesDailyFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = t.TempDir()

	logger, closeLog, err := logging.NewFromConfig(&cfg, false)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	defer closeLog()
	logger.Info("hello from test")

	content, err := os.ReadFile(logging.LogFilePath(cfg.Paths.StateDir, time.Now()))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "hello from test") {
		t.Fatalf("expected message in log file, got %q", content)
	}
}

func TestCloseReleasesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "closed.log")

	logger, closeLog, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath, "stderr"}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("before close")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	logger.Info("after close")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "before close") || strings.Contains(string(content), "after close") {
		t.Fatalf("expected only records written before close, got %q", content)
	}
}

func TestStderrOnlyCloseIsNoop(t *testing.T) {
	_, closeLog, err := logging.New(logging.Options{Format: "console"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, closeLog, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLog()
	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerPromotesComponent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "component.log")

	logger, closeLog, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLog()
	logging.NewComponentLogger(logger, "organizer").Info("file moved", logging.String("target", "Docs/a b.txt"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, "INFO organizer: file moved") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if !strings.Contains(line, `target="Docs/a b.txt"`) {
		t.Fatalf("expected quoted value, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not be repeated as a field: %q", line)
	}
}

func TestJSONLoggerIncludesRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")

	logger, closeLog, err := logging.New(logging.Options{Format: "json", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLog()
	ctx := logging.WithRunID(context.Background(), "run-123")
	logging.WithContext(ctx, logger).Info("scan complete")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(content), &record); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if record[logging.FieldRunID] != "run-123" {
		t.Fatalf("expected run id, got %v", record[logging.FieldRunID])
	}
	if record["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logging.WarnWithContext(logger, "something odd", "odd_event")

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{logging.FieldEventType, logging.FieldErrorHint, logging.FieldImpact} {
		if _, ok := record[key]; !ok {
			t.Fatalf("expected %s in record: %v", key, record)
		}
	}
}

func TestCleanupOldLogsRemovesExpiredFiles(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "tidy-20200101.log")
	freshPath := filepath.Join(dir, "tidy-20990101.log")
	otherPath := filepath.Join(dir, "journal.db")
	for _, p := range []string{oldPath, freshPath, otherPath} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().AddDate(0, 0, -90)
	for _, p := range []string{oldPath, otherPath} {
		if err := os.Chtimes(p, past, past); err != nil {
			t.Fatal(err)
		}
	}

	logging.CleanupOldLogs(logging.NewNop(), 30, logging.RetentionTarget{Dir: dir, Pattern: logging.LogFilePattern})

	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Fatalf("expected old log removed, stat err=%v", err)
	}
	if _, err := os.Stat(freshPath); err != nil {
		t.Fatalf("expected fresh log kept: %v", err)
	}
	if _, err := os.Stat(otherPath); err != nil {
		t.Fatalf("expected non-matching file kept: %v", err)
	}
}
