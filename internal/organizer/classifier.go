package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tidy/internal/logging"
	"tidy/internal/textutil"
)

type resolution int

const (
	resolveCreate resolution = iota
	resolvePick
)

// classify returns the destination folder for file. A nil folder with a nil
// error means the file stays where it is (dry run declined to create a folder).
func (s *Session) classify(ctx context.Context, file File) (*Folder, error) {
	logger := logging.WithContext(ctx, s.logger).With(logging.String("file", file.Name()))
	ext := file.Extension()

	if s.index.Len() == 0 {
		logger.Info("classification decision", logging.Args(logging.DecisionAttrs("destination", "create", "no folders exist")...)...)
		s.printf("----\nNo folders found in directory. ")
		return s.createFolder(ctx, file)
	}

	if ext != "" {
		if owner, ok := s.index.OwnerOf(ext); ok {
			logger.Debug("classification decision", logging.Args(logging.DecisionAttrs("destination", owner.Name(), "extension owner")...)...)
			return owner, nil
		}
		s.printf("----\nFile %s has unsupported extension: '%s'.\n", file.Name(), ext)
	} else {
		s.printf("----\nFile '%s' has no extension.\n", file.Name())
	}

	question := fmt.Sprintf("Do you want to create new folder for this file? [y/N]:\n(Folders: %s)\n", textutil.JoinNames(s.index.Names()))
	choice, err := askUntilValid(ctx, s, question, parseResolution)
	if err != nil {
		return nil, err
	}
	if choice == resolveCreate {
		logger.Info("classification decision", logging.Args(logging.DecisionAttrs("destination", "create", "user chose new folder")...)...)
		return s.createFolder(ctx, file)
	}
	folder, err := s.pickFolder(ctx, file)
	if err != nil {
		return nil, err
	}
	logger.Info("classification decision", logging.Args(logging.DecisionAttrs("destination", folder.Name(), "user picked folder")...)...)
	return folder, nil
}

func parseResolution(answer string) (resolution, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return resolveCreate, nil
	case "", "n", "no":
		return resolvePick, nil
	default:
		return 0, fmt.Errorf("%w: expected y or n", ErrInvalidInput)
	}
}

// createFolder asks for a new folder name, creates it, and records the
// file's extension as owned by the new folder.
func (s *Session) createFolder(ctx context.Context, file File) (*Folder, error) {
	if s.opts.DryRun {
		s.printf("A new folder would be created for %s; it would not be moved (dry run).\n", file.Name())
		return nil, nil
	}

	question := fmt.Sprintf("Please enter directory name for %s:\n", file.Name())
	name, err := askUntilValid(ctx, s, question, s.validateNewFolderName)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.opts.Directory, name)
	if err := os.Mkdir(path, 0o755); err != nil {
		return nil, Wrap(ErrMoveFailed, "create folder", name, err)
	}
	folder := s.index.Register(NewFolder(name))
	if file.Extension() != "" {
		folder.AddFile(PlaceholderFor(file))
	}
	s.printf("Folder %s created.\n", name)
	logging.WithContext(ctx, s.logger).Info("folder created",
		logging.String("folder", name),
		logging.String("extension", file.Extension()),
	)
	return folder, nil
}

func (s *Session) validateNewFolderName(answer string) (string, error) {
	name := strings.TrimSpace(answer)
	if !textutil.IsAlphanumeric(name) {
		return "", fmt.Errorf("%w: folder name must be letters and digits only", ErrInvalidInput)
	}
	if _, exists := s.index.Lookup(name); exists {
		return "", fmt.Errorf("%w: folder %s already exists", ErrInvalidInput, name)
	}
	if _, err := os.Lstat(filepath.Join(s.opts.Directory, name)); err == nil {
		return "", fmt.Errorf("%w: %s already exists in the directory", ErrInvalidInput, name)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", Wrap(ErrFilesystemUnavailable, "check folder name", name, err)
	}
	return name, nil
}

// pickFolder asks for one of the known folders and records the file's
// extension under it.
func (s *Session) pickFolder(ctx context.Context, file File) (*Folder, error) {
	question := fmt.Sprintf("Pick folder where file %s extension should be moved:\n", file.Name())
	folder, err := askUntilValid(ctx, s, question, s.parseKnownFolder)
	if err != nil {
		return nil, err
	}
	if file.Extension() != "" {
		folder.AddFile(PlaceholderFor(file))
	}
	return folder, nil
}

func (s *Session) parseKnownFolder(answer string) (*Folder, error) {
	folder, ok := s.index.Lookup(strings.TrimSpace(answer))
	if !ok {
		return nil, fmt.Errorf("%w: unknown folder %q", ErrInvalidInput, answer)
	}
	return folder, nil
}
