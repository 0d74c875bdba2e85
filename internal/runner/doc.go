// Package runner executes one subrename pass over a media directory.
//
// A pass resolves the directory (by default the one holding the executable),
// takes a per-directory advisory lock, scans and classifies entries, builds the
// rename plan and applies it. The returned Report carries everything the CLI
// renders; the returned error decides the exit status:
//
//   - nil after a completed rename pass, even when individual renames failed
//   - nil after a video/subtitle count mismatch (nothing is renamed)
//   - ErrNoMatches when no subtitle pairs with a video
//   - any other error for unreadable directories or a held lock
package runner
