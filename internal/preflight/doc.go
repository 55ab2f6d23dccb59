// Package preflight provides readiness checks for the filesystem paths tidy
// depends on.
//
// The clean command refuses to start on a directory that fails
// CheckDirectoryAccess, or CheckDirectoryReadable for a dry run, and
// `tidy check` renders every Result so users can see why a run would be
// rejected.
package preflight
