package organizer

import (
	"context"
	"path/filepath"

	"tidy/internal/fileutil"
	"tidy/internal/journal"
	"tidy/internal/logging"
	"tidy/internal/textutil"
)

// candidate is a file to move together with the folder it currently lives in
// ("" for the root directory).
type candidate struct {
	file   File
	origin string
}

func (c candidate) relPath() string {
	if c.origin == "" {
		return c.file.Name()
	}
	return filepath.Join(c.origin, c.file.Name())
}

// targetName returns the name file gets inside dest: the original name, or
// the first free " (N)" variant when the name is already taken. Spaces become
// underscores when the session asks for it.
func (s *Session) targetName(file File, dest *Folder) string {
	render := func(ordinal int) string {
		name := file.withOrdinal(ordinal)
		if s.opts.Underscore {
			name = textutil.Underscore(name)
		}
		return name
	}

	name := render(0)
	if !dest.HasFile(file.Name()) && !dest.Occupied(name) {
		return name
	}
	ordinal := file.NextOrdinal()
	for dest.Occupied(render(ordinal)) {
		ordinal++
	}
	return render(ordinal)
}

// place moves (or in a dry run, reports) the file into dest and records the
// move in the session state.
func (s *Session) place(ctx context.Context, c candidate, dest *Folder) error {
	logger := logging.WithContext(ctx, s.logger)

	if c.origin != "" && textutil.NameKey(c.origin) == textutil.NameKey(dest.Name()) {
		if s.opts.DryRun {
			s.printf("%s would not be moved, same location.\n", c.relPath())
		}
		logger.Debug("move skipped; already in place", logging.String("file", c.relPath()))
		return nil
	}

	target := s.targetName(c.file, dest)
	sourcePath := filepath.Join(s.opts.Directory, c.relPath())
	targetRel := filepath.Join(dest.Name(), target)
	targetPath := filepath.Join(s.opts.Directory, targetRel)

	dest.AddFile(c.file)
	dest.occupy(target)
	if c.origin != "" {
		if origin, ok := s.index.Lookup(c.origin); ok {
			origin.release(c.file.Name())
		}
	}

	if s.opts.DryRun {
		s.printf("%s would be moved to %s\n", c.relPath(), targetRel)
	} else {
		if err := fileutil.MoveFile(sourcePath, targetPath); err != nil {
			return Wrap(ErrMoveFailed, "move", c.relPath()+" -> "+targetRel, err)
		}
		s.printf("%s moved to %s\n", c.relPath(), targetRel)
		s.record(ctx, c.relPath(), targetRel)
	}

	s.moved = append(s.moved, c.relPath())
	logger.Info("file placed",
		logging.String("source", c.relPath()),
		logging.String("target", targetRel),
		logging.Bool("dry_run", s.opts.DryRun),
	)
	return nil
}

func (s *Session) record(ctx context.Context, source, target string) {
	if s.recorder == nil {
		return
	}
	runID, _ := logging.RunIDFromContext(ctx)
	if runID == "" {
		runID = "unknown"
	}
	_, err := s.recorder.Record(ctx, journal.Entry{
		RunID:     runID,
		Directory: s.opts.Directory,
		Source:    source,
		Target:    target,
	})
	if err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, s.logger), "journal write failed", "journal_write_failed",
			logging.Error(err),
			logging.String("source", source),
			logging.String(logging.FieldImpact, "move is not listed in tidy history"),
		)
	}
}
