// Package journal persists the history of file moves performed by tidy in a
// SQLite database inside the state directory.
//
// Every live move is recorded with the run identifier, the organized
// directory, and the source and target paths relative to it. Dry runs never
// reach the journal. The history is informational: `tidy history` reads it,
// nothing replays it.
package journal
