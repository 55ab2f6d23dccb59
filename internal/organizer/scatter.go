package organizer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"tidy/internal/logging"
	"tidy/internal/textutil"
)

type scatterChoice int

const (
	scatterBasic scatterChoice = iota
	scatterMove
)

// Reconcile looks for extensions owned by more than one folder and, when the
// user opts in, moves every file with such an extension into one folder.
func (s *Session) Reconcile(ctx context.Context) error {
	dups := s.index.DuplicateExtensions()
	if len(dups) == 0 {
		return nil
	}
	logger := logging.WithContext(ctx, s.logger)
	logger.Info("scattered extensions detected", logging.String("extensions", strings.Join(dups, ",")))

	question := "Extensions are scattered in your folders.\n" +
		"Do you want to move them all to specific folder\n" +
		"or just run basic cleaning? [move/basic]: "
	choice, err := askUntilValid(ctx, s, question, parseScatterChoice)
	if err != nil {
		return err
	}
	if choice == scatterBasic {
		logger.Info("consolidation decision", logging.Args(logging.DecisionAttrs("scatter", "basic", "user declined consolidation")...)...)
		return nil
	}

	for _, ext := range dups {
		if err := s.consolidate(ctx, ext); err != nil {
			return err
		}
	}
	return nil
}

func parseScatterChoice(answer string) (scatterChoice, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "move":
		return scatterMove, nil
	case "basic":
		return scatterBasic, nil
	default:
		return 0, fmt.Errorf("%w: expected move or basic", ErrInvalidInput)
	}
}

// consolidate moves every file carrying ext, one level deep, into the folder
// the user picks, and pins that folder as the extension's owner.
func (s *Session) consolidate(ctx context.Context, ext string) error {
	candidates, err := s.collectExtension(ext)
	if err != nil {
		return err
	}
	var holders []string
	seen := make(map[string]struct{})
	for _, c := range candidates {
		if _, ok := seen[c.origin]; ok {
			continue
		}
		seen[c.origin] = struct{}{}
		holders = append(holders, c.origin)
	}

	question := fmt.Sprintf("Files with '%s' extension are scattered in your folders:\n %s\nWhere do you want to put them?\n(%s)\n",
		ext, textutil.JoinNames(holders), textutil.JoinNames(s.index.Names()))
	dest, err := askUntilValid(ctx, s, question, s.parseKnownFolder)
	if err != nil {
		return err
	}
	logging.WithContext(ctx, s.logger).Info("consolidation decision",
		logging.Args(logging.DecisionAttrs("scatter", dest.Name(), "user picked folder for ."+ext)...)...)

	before := len(s.moved)
	for _, c := range candidates {
		if err := s.place(ctx, c, dest); err != nil {
			return err
		}
	}
	s.index.Pin(ext, dest)
	s.printf("Files with '%s' extension consolidated into %s (%d moved).\n", ext, dest.Name(), len(s.moved)-before)
	return nil
}

// collectExtension lists the files carrying ext inside every known folder,
// read from disk in folder discovery order.
func (s *Session) collectExtension(ext string) ([]candidate, error) {
	var out []candidate
	for _, folder := range s.index.Folders() {
		_, files, err := s.listEntries(filepath.Join(s.opts.Directory, folder.Name()))
		if err != nil {
			return nil, Wrap(ErrFilesystemUnavailable, "collect extension", folder.Name(), err)
		}
		for _, name := range files {
			file := NewFile(name)
			if file.Extension() == ext {
				out = append(out, candidate{file: file, origin: folder.Name()})
			}
		}
	}
	return out, nil
}
