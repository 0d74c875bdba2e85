// Package main hosts the subrename CLI entrypoint and command graph.
//
// Run without a subcommand, subrename renames the subtitles in the directory
// that holds the executable so each one matches its video's base name. Drop
// the binary next to a season of episodes and run it. The --dir flag points
// it somewhere else.
//
// Keep this package lean: behaviour lives in the internal packages and the
// commands here only wire configuration, logging and output together.
package main
