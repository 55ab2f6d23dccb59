package organizer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tidy/internal/journal"
	"tidy/internal/logging"
	"tidy/internal/preflight"
)

// Options configures one organizer run.
type Options struct {
	Directory  string
	DryRun     bool
	Underscore bool
}

// Recorder persists completed moves.
type Recorder interface {
	Record(ctx context.Context, entry journal.Entry) (int64, error)
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logging.NewComponentLogger(logger, "organizer")
	}
}

// WithOutput sets where user-facing reports are written.
func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithRecorder journals every live move.
func WithRecorder(r Recorder) SessionOption {
	return func(s *Session) {
		s.recorder = r
	}
}

// Session holds the state of one organizer run: the directory, the known
// folders, and the files moved so far.
type Session struct {
	opts     Options
	index    *Index
	prompter Prompter
	out      io.Writer
	logger   *slog.Logger
	recorder Recorder
	moved    []string
}

// NewSession validates the target directory and returns a ready session. A
// dry-run session only needs read access to the directory.
func NewSession(opts Options, prompter Prompter, options ...SessionOption) (*Session, error) {
	if prompter == nil {
		return nil, fmt.Errorf("organizer: prompter is required")
	}
	dir := strings.TrimSpace(opts.Directory)
	if dir == "" {
		return nil, Wrap(ErrFilesystemUnavailable, "open directory", "no directory given", nil)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, Wrap(ErrFilesystemUnavailable, "open directory", dir, err)
	}
	check := preflight.CheckDirectoryAccess
	if opts.DryRun {
		check = preflight.CheckDirectoryReadable
	}
	if result := check("Target directory", abs); !result.Passed {
		return nil, Wrap(ErrFilesystemUnavailable, "open directory", result.Detail, nil)
	}
	opts.Directory = abs

	s := &Session{
		opts:     opts,
		index:    NewIndex(),
		prompter: prompter,
		out:      io.Discard,
		logger:   logging.NewComponentLogger(nil, "organizer"),
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Directory returns the absolute directory being organized.
func (s *Session) Directory() string { return s.opts.Directory }

// Index exposes the known folders and extension ownership.
func (s *Session) Index() *Index { return s.index }

// Run scans the folders, reconciles scattered extensions, cleans the root and
// prints the summary. The summary is printed even when a move fails.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	logger := logging.WithContext(ctx, s.logger)
	logger.Info("organizer run started",
		logging.String(logging.FieldDirectory, s.opts.Directory),
		logging.Bool("dry_run", s.opts.DryRun),
		logging.Bool("underscore", s.opts.Underscore),
	)

	err := s.Scan(ctx)
	if err == nil {
		err = s.Reconcile(ctx)
	}
	if err == nil {
		err = s.Clean(ctx)
	}

	summary := s.Summary()
	s.printf("%s\n", summary.String())
	if err != nil {
		logging.ErrorWithContext(logger, "organizer run aborted", "run_aborted",
			logging.Error(err),
			logging.Int("moved", summary.Count()),
			logging.String(logging.FieldErrorHint, "files moved before the failure stay in place"),
		)
		return summary, err
	}
	logger.Info("organizer run finished", logging.Int("moved", summary.Count()))
	return summary, nil
}

// Scan registers every visible first-level subdirectory and its regular files.
func (s *Session) Scan(ctx context.Context) error {
	logger := logging.WithContext(ctx, s.logger)
	dirs, _, err := s.listEntries(s.opts.Directory)
	if err != nil {
		return Wrap(ErrFilesystemUnavailable, "scan", s.opts.Directory, err)
	}
	for _, name := range dirs {
		folder := s.index.Register(NewFolder(name))
		_, files, err := s.listEntries(filepath.Join(s.opts.Directory, name))
		if err != nil {
			return Wrap(ErrFilesystemUnavailable, "scan", name, err)
		}
		for _, file := range files {
			folder.AddFile(NewFile(file))
		}
		logger.Debug("folder scanned",
			logging.String("folder", name),
			logging.Int("files", len(files)),
			logging.String("extensions", strings.Join(folder.Extensions(), ",")),
		)
	}
	logger.Info("scan complete", logging.Int("folders", s.index.Len()))
	return nil
}

// Clean routes every loose file in the root directory to its folder.
func (s *Session) Clean(ctx context.Context) error {
	_, files, err := s.listEntries(s.opts.Directory)
	if err != nil {
		return Wrap(ErrFilesystemUnavailable, "list loose files", s.opts.Directory, err)
	}
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		file := NewFile(name)
		dest, err := s.classify(ctx, file)
		if err != nil {
			return err
		}
		if dest == nil {
			continue
		}
		if err := s.place(ctx, candidate{file: file}, dest); err != nil {
			return err
		}
	}
	return nil
}

// Summary reports the files moved so far.
func (s *Session) Summary() Summary {
	moved := make([]string, len(s.moved))
	copy(moved, s.moved)
	return Summary{DryRun: s.opts.DryRun, Moved: moved}
}

// listEntries returns visible subdirectory names and regular file names of
// dir, both sorted. Dot-prefixed entries are ignored.
func (s *Session) listEntries(dir string) ([]string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	var dirs, files []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			// Dangling symlinks and entries that vanished mid-scan are skipped.
			s.logger.Debug("entry skipped", logging.String("name", name), logging.Error(err))
			continue
		}
		switch {
		case info.IsDir():
			dirs = append(dirs, name)
		case info.Mode().IsRegular():
			files = append(files, name)
		}
	}
	return dirs, files, nil
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
