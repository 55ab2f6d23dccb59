// Package logs reads tidy's daily log files for the `tidy logs` command.
//
// It locates the newest log file in the state directory, returns its last N
// lines with bounded memory, and follows appended lines until the caller's
// context is cancelled.
package logs
