package organizer

import (
	"regexp"
	"strconv"
	"strings"
)

// FileKind distinguishes concrete files from extension claims.
type FileKind int

const (
	// Concrete is a file that exists (or will exist) on disk.
	Concrete FileKind = iota
	// Placeholder records that a folder owns an extension without a backing
	// file. Placeholders never take part in duplicate-name checks.
	Placeholder
)

var ordinalPattern = regexp.MustCompile(`^.+ \((\d+)\)$`)

// File is an immutable file name with derived extension and base name.
type File struct {
	name string
	kind FileKind
}

// NewFile wraps a concrete file name.
func NewFile(name string) File {
	return File{name: name, kind: Concrete}
}

// PlaceholderFor returns a placeholder claiming the extension of f.
func PlaceholderFor(f File) File {
	return File{name: f.name, kind: Placeholder}
}

// Name returns the full file name.
func (f File) Name() string { return f.name }

// Kind reports whether the file is concrete or a placeholder.
func (f File) Kind() FileKind { return f.kind }

// IsPlaceholder reports whether f only claims an extension.
func (f File) IsPlaceholder() bool { return f.kind == Placeholder }

// Extension returns the text after the final dot, or "" when the name has no dot.
func (f File) Extension() string {
	idx := strings.LastIndexByte(f.name, '.')
	if idx < 0 {
		return ""
	}
	return f.name[idx+1:]
}

// BaseName returns the name without its final ".extension". Names without an
// extension are returned unchanged.
func (f File) BaseName() string {
	idx := strings.LastIndexByte(f.name, '.')
	if idx < 0 || idx == len(f.name)-1 {
		return f.name
	}
	return f.name[:idx]
}

// NextOrdinal returns the duplicate counter for the next copy of this file.
// "report (4).txt" yields 5; a name without a " (N)" marker yields 2.
func (f File) NextOrdinal() int {
	m := ordinalPattern.FindStringSubmatch(f.BaseName())
	if m == nil {
		return 2
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 2
	}
	return n + 1
}

// withOrdinal renders the file name carrying ordinal; 0 means no suffix.
func (f File) withOrdinal(ordinal int) string {
	var b strings.Builder
	b.WriteString(f.BaseName())
	if ordinal > 0 {
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(ordinal))
		b.WriteString(")")
	}
	if ext := f.Extension(); ext != "" {
		b.WriteString(".")
		b.WriteString(ext)
	}
	return b.String()
}

func (f File) String() string { return f.name }
