package organizer

import (
	"sort"

	"tidy/internal/textutil"
)

// Index is the set of known folders in discovery order. Extension ownership
// is computed from the folders' file lists on every query, so a file added to
// a folder is visible to the next lookup.
type Index struct {
	folders []*Folder
	byName  map[string]*Folder
	pins    map[string]*Folder
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		byName: make(map[string]*Folder),
		pins:   make(map[string]*Folder),
	}
}

// Register appends folder. Registering a name twice returns the existing folder.
func (x *Index) Register(folder *Folder) *Folder {
	key := textutil.NameKey(folder.Name())
	if existing, ok := x.byName[key]; ok {
		return existing
	}
	x.folders = append(x.folders, folder)
	x.byName[key] = folder
	return folder
}

// Lookup finds a folder by name.
func (x *Index) Lookup(name string) (*Folder, bool) {
	folder, ok := x.byName[textutil.NameKey(name)]
	return folder, ok
}

// Len returns the number of known folders.
func (x *Index) Len() int { return len(x.folders) }

// Folders returns the folders in discovery order.
func (x *Index) Folders() []*Folder {
	out := make([]*Folder, len(x.folders))
	copy(out, x.folders)
	return out
}

// Names returns folder names in discovery order.
func (x *Index) Names() []string {
	out := make([]string, 0, len(x.folders))
	for _, folder := range x.folders {
		out = append(out, folder.Name())
	}
	return out
}

// Pin makes folder the owner of ext regardless of discovery order. The
// scatter reconciler pins the folder an extension was consolidated into.
func (x *Index) Pin(ext string, folder *Folder) {
	if ext == "" || folder == nil {
		return
	}
	x.pins[ext] = folder
}

// OwnerOf returns the pinned owner of ext, else the first folder in discovery
// order whose files carry ext.
func (x *Index) OwnerOf(ext string) (*Folder, bool) {
	if ext == "" {
		return nil, false
	}
	if folder, ok := x.pins[ext]; ok {
		return folder, true
	}
	for _, folder := range x.folders {
		if folder.Owns(ext) {
			return folder, true
		}
	}
	return nil, false
}

// Owners returns every folder whose files carry ext, in discovery order.
func (x *Index) Owners(ext string) []*Folder {
	var out []*Folder
	for _, folder := range x.folders {
		if folder.Owns(ext) {
			out = append(out, folder)
		}
	}
	return out
}

// Extensions returns every owned extension, sorted.
func (x *Index) Extensions() []string {
	seen := make(map[string]struct{})
	for _, folder := range x.folders {
		for _, ext := range folder.Extensions() {
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

// DuplicateExtensions returns the sorted extensions owned by more than one
// folder. Each folder counts once per extension regardless of file count.
func (x *Index) DuplicateExtensions() []string {
	counts := make(map[string]int)
	for _, folder := range x.folders {
		for _, ext := range folder.Extensions() {
			counts[ext]++
		}
	}
	var out []string
	for ext, n := range counts {
		if n > 1 {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}
