package main

import (
	"errors"
	"slices"
	"testing"

	"subrename/internal/runner"
	"subrename/internal/testsupport"
)

func TestRootRenamesAndPrintsSummary(t *testing.T) {
	dir := testsupport.MediaDir(t, []string{"Ep01.mkv", "Ep02.mkv"}, []string{"01.srt", "02.ass"})

	out, _, err := runCLI(t, "--dir", dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "current directory")
	requireContains(t, out, "subtitle file")
	requireContains(t, out, "Renamed To")
	requireContains(t, out, "Ep02.ass")

	got := testsupport.ListNames(t, dir)
	want := []string{"Ep01.mkv", "Ep01.srt", "Ep02.ass", "Ep02.mkv"}
	if !slices.Equal(got, want) {
		t.Fatalf("directory = %v, want %v", got, want)
	}
}

func TestRootNoMatchesFails(t *testing.T) {
	dir := testsupport.MediaDir(t, []string{"Movie.mkv"}, []string{"commentary.srt"})

	out, _, err := runCLI(t, "--dir", dir)
	if !errors.Is(err, runner.ErrNoMatches) {
		t.Fatalf("expected ErrNoMatches, got %v", err)
	}
	requireContains(t, out, "no matching video and subtitle files found")
}

func TestRootCountMismatchSucceeds(t *testing.T) {
	dir := testsupport.MediaDir(t, []string{"Ep01.mkv"}, []string{"01.srt", "02.srt"})

	out, _, err := runCLI(t, "--dir", dir, "--log-level", "warn")
	if err != nil {
		t.Fatalf("mismatch should exit cleanly, got %v", err)
	}
	requireContains(t, out, "do not match")
	requireContains(t, out, "videos=1")
	requireContains(t, out, "subtitles=2")
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	if _, _, err := runCLI(t, "somewhere"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestExtractCommand(t *testing.T) {
	out, _, err := runCLI(t, "extract", "Ep01.mkv", "/media/Show.S01E07.mkv", "Movie.mkv")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	requireContains(t, out, "ep_prefix")
	requireContains(t, out, "Show.S01E07.mkv")
	requireContains(t, out, "season_episode")
	requireContains(t, out, "no match")
}
