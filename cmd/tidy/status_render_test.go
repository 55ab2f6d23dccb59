package main

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Target directory", statusError, "missing", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Target directory:", "[ERROR] missing")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Journal", statusOK, "ready", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestCheckCommandReportsDirectories(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "== Preflight ==")
	requireContains(t, out, "[OK] "+env.dir)

	if _, _, err := env.run(t, "", "check", "--dir", env.dir+"-missing"); err == nil {
		t.Fatal("expected failure for missing directory")
	}
}
