package main

import (
	"os"
	"strings"
	"testing"

	"tidy/internal/testsupport"
)

func TestScanReportsOwnersAndScatter(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.Tree(t, env.dir, "loose.jpg", "A/x.jpg", "B/y.jpg", "B/z.png")
	before := testsupport.Listing(t, env.dir)

	out, _, err := env.run(t, "", "scan")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "Folders:   2")
	requireContains(t, out, ".jpg")
	requireContains(t, out, "A, B")
	requireContains(t, out, "Scattered extensions: jpg")

	after := testsupport.Listing(t, env.dir)
	if strings.Join(before, "\n") != strings.Join(after, "\n") {
		t.Fatalf("scan changed the tree:\n%q\n%q", before, after)
	}
}

func TestScanWithoutFolders(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "scan", "--dir", env.dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "No extensions found in subfolders")
}

func TestScanReadOnlyDirectory(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.Tree(t, env.dir, "A/x.jpg")
	if err := os.Chmod(env.dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(env.dir, 0o755) })

	out, _, err := env.run(t, "", "scan")
	if err != nil {
		t.Fatalf("scan of read-only directory: %v", err)
	}
	requireContains(t, out, "Folders:   1")
}
