// Package preflight provides readiness checks for the media directory.
//
// Checks report rather than fail: the runner logs a failed check as a warning
// and lets the scan surface the real error, since a directory that cannot be
// listed is fatal anyway and one that cannot be written only fails individual
// renames.
package preflight
