package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DefaultDirectory string `toml:"default_directory"`
	StateDir         string `toml:"state_dir"`
}

// Organize contains the behaviour flags of a cleaning run.
type Organize struct {
	DryRun     bool `toml:"dry_run"`
	Underscore bool `toml:"underscore"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	RetentionDays int    `toml:"retention_days"`
}

// Journal controls the persistent move history.
type Journal struct {
	Enabled bool `toml:"enabled"`
}

// Config encapsulates all configuration values for tidy.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Organize Organize `toml:"organize"`
	Logging  Logging  `toml:"logging"`
	Journal  Journal  `toml:"journal"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

// EnsureDirectories creates the state directory used for logs and the journal.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StateDir, err)
	}
	return nil
}

// JournalPath returns the SQLite journal location inside the state directory.
func (c *Config) JournalPath() string {
	return filepath.Join(c.Paths.StateDir, "journal.db")
}

// LockPath returns the run lock location inside the state directory.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "tidy.lock")
}

// SaveDefaultDirectory persists dir as paths.default_directory in the file at
// path. Only the default_directory assignment is rewritten; comments, key
// order and every other setting stay as the user left them.
func SaveDefaultDirectory(path, dir string) error {
	target := strings.TrimSpace(path)
	if target == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		target = defaultPath
	}
	target, err := expandPath(target)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(target)
	switch {
	case err == nil:
		var existing map[string]any
		if err := toml.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("read config: %w", err)
	}

	updated, err := withDefaultDirectory(string(data), dir)
	if err != nil {
		return err
	}
	var check Config
	if err := toml.Unmarshal([]byte(updated), &check); err != nil {
		return fmt.Errorf("update config: %w", err)
	}
	if check.Paths.DefaultDirectory != dir {
		return fmt.Errorf("update config: default_directory could not be rewritten in place")
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

var defaultDirectoryLine = regexp.MustCompile(`^(\s*default_directory\s*=\s*)("(?:[^"\\]|\\.)*"|'[^']*')(.*)$`)

// withDefaultDirectory returns doc with the [paths] default_directory value
// replaced, inserting the key or the table when either is missing.
func withDefaultDirectory(doc, dir string) (string, error) {
	encoded, err := toml.Marshal(map[string]string{"default_directory": dir})
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	assignment := strings.TrimSpace(string(encoded))
	_, value, _ := strings.Cut(assignment, "=")
	value = strings.TrimSpace(value)

	if strings.TrimSpace(doc) == "" {
		return "[paths]\n" + assignment + "\n", nil
	}

	lines := strings.Split(doc, "\n")
	section := ""
	header := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			section = tableName(trimmed)
			if section == "paths" && header < 0 {
				header = i
			}
			continue
		}
		if section != "paths" {
			continue
		}
		if m := defaultDirectoryLine.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + value + m[3]
			return strings.Join(lines, "\n"), nil
		}
	}

	if header >= 0 {
		lines = slices.Insert(lines, header+1, assignment)
		return strings.Join(lines, "\n"), nil
	}
	if !strings.HasSuffix(doc, "\n") {
		doc += "\n"
	}
	return doc + "\n[paths]\n" + assignment + "\n", nil
}

func tableName(header string) string {
	name, _, _ := strings.Cut(strings.TrimPrefix(header, "["), "]")
	return strings.TrimSpace(name)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
