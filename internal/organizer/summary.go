package organizer

import (
	"fmt"
	"strings"
)

// Summary is the end-of-run report.
type Summary struct {
	DryRun bool
	// Moved holds the original paths, relative to the directory, of every file
	// moved (or, in a dry run, that would be moved).
	Moved []string
}

// Count returns the number of moved files.
func (s Summary) Count() int { return len(s.Moved) }

// String renders the summary the way it is shown to the user.
func (s Summary) String() string {
	if len(s.Moved) == 0 {
		return "No cleaning was required"
	}
	verb := "was moved"
	noun := "file"
	if len(s.Moved) != 1 {
		noun = "files"
		verb = "were moved"
	}
	if s.DryRun {
		verb = "would be moved"
	}
	return fmt.Sprintf("%d %s %s:\n%s", len(s.Moved), noun, verb, strings.Join(s.Moved, ", "))
}
