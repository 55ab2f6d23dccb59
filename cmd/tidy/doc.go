// Package main hosts the tidy CLI entrypoint and command graph.
//
// The root command runs an interactive cleaning pass over one directory:
// loose files are routed into the subfolders that already hold their
// extension, with prompts when no folder does. Subcommands expose the
// read-only views (scan, history, check) and configuration scaffolding.
//
// Keep this package lean: behaviour lives in internal/organizer and the
// supporting internal packages; commands here only resolve configuration,
// wire logging, locking and the journal, and render output.
package main
