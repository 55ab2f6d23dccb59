package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tidy/internal/config"
	"tidy/internal/organizer"
)

// promptDirectory offers defaultDir and returns the directory the user
// confirms. An empty answer accepts the default; anything that is not an
// existing directory is rejected and the question repeated.
func promptDirectory(ctx context.Context, prompter organizer.Prompter, out io.Writer, defaultDir string) (string, error) {
	question := fmt.Sprintf("Default directory for cleaner is %s. If it's not, please input correct directory:\n", defaultDir)
	for {
		answer, err := prompter.Ask(ctx, question)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", organizer.Wrap(organizer.ErrPromptClosed, "prompt", "directory selection", nil)
			}
			return "", err
		}
		candidate := strings.TrimSpace(answer)
		if candidate == "" {
			candidate = defaultDir
		}
		if dir, ok := existingDirectory(candidate); ok {
			return dir, nil
		}
		fmt.Fprintln(out, "Provided path is not a directory.")
	}
}

func existingDirectory(path string) (string, bool) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(expanded)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return expanded, true
}
