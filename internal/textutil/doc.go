// Package textutil provides name normalization helpers shared by the
// organizer and the CLI.
//
// File systems disagree on the Unicode form of stored names (macOS returns
// decomposed names, most Linux tools compose them), so comparisons of folder
// and file names go through NameKey rather than raw string equality.
package textutil
