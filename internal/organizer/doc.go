// Package organizer sorts the loose files of a directory into its first-level
// subfolders.
//
// A Session scans the subfolders to learn which extensions each one owns,
// offers to consolidate extensions scattered across several folders, and then
// routes every loose file in the root to the folder owning its extension.
// Unknown or missing extensions are resolved interactively through a Prompter:
// the user either creates a new folder or picks an existing one, and the
// answer is remembered for the rest of the run. Name collisions in the
// destination are resolved with " (N)" ordinals.
//
// All prompts go through the Prompter interface so runs can be scripted in
// tests; in dry-run mode the filesystem is never modified.
package organizer
