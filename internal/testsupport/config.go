package testsupport

import (
	"path/filepath"
	"testing"

	"tidy/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DefaultDirectory = filepath.Join(base, "downloads")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithDryRun enables dry-run mode on the test config.
func WithDryRun() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.DryRun = true
	}
}

// WithUnderscore enables space-to-underscore renaming on the test config.
func WithUnderscore() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.Underscore = true
	}
}

// WithoutJournal disables the move journal on the test config.
func WithoutJournal() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Journal.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
