package organizer

import (
	"sort"

	"tidy/internal/textutil"
)

// Folder is a first-level subdirectory and the files believed to live in it.
// The file list is append-only for the duration of a run.
type Folder struct {
	name     string
	files    []File
	occupied map[string]struct{}
}

// NewFolder returns an empty folder.
func NewFolder(name string) *Folder {
	return &Folder{name: name, occupied: make(map[string]struct{})}
}

// Name returns the directory name.
func (f *Folder) Name() string { return f.name }

// AddFile appends file. Callers must not add the same file twice.
func (f *Folder) AddFile(file File) {
	f.files = append(f.files, file)
	if !file.IsPlaceholder() {
		f.occupy(file.Name())
	}
}

// Files returns a snapshot of the folder's files in insertion order.
func (f *Folder) Files() []File {
	out := make([]File, len(f.files))
	copy(out, f.files)
	return out
}

// Extensions returns the sorted set of non-empty extensions across all files,
// placeholders included.
func (f *Folder) Extensions() []string {
	seen := make(map[string]struct{})
	for _, file := range f.files {
		if ext := file.Extension(); ext != "" {
			seen[ext] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for ext := range seen {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Owns reports whether any file in the folder carries ext.
func (f *Folder) Owns(ext string) bool {
	if ext == "" {
		return false
	}
	for _, file := range f.files {
		if file.Extension() == ext {
			return true
		}
	}
	return false
}

// HasFile reports whether a concrete file called name is in the folder.
func (f *Folder) HasFile(name string) bool {
	key := textutil.NameKey(name)
	for _, file := range f.files {
		if !file.IsPlaceholder() && textutil.NameKey(file.Name()) == key {
			return true
		}
	}
	return false
}

// Occupied reports whether name is taken on disk, including names produced
// by ordinal suffixing during this run.
func (f *Folder) Occupied(name string) bool {
	_, ok := f.occupied[textutil.NameKey(name)]
	return ok
}

func (f *Folder) occupy(name string) {
	f.occupied[textutil.NameKey(name)] = struct{}{}
}

func (f *Folder) release(name string) {
	delete(f.occupied, textutil.NameKey(name))
}

func (f *Folder) String() string { return f.name }
