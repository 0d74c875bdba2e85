package planner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ExtractFunc infers an episode number from a filename.
type ExtractFunc func(filename string) (uint32, bool)

// Operation renames one subtitle file.
type Operation struct {
	Episode uint32
	OldName string
	NewName string
}

// Noop reports whether the subtitle already carries its target name.
func (o Operation) Noop() bool {
	return o.OldName == o.NewName
}

// Plan is the ordered list of renames for one directory.
type Plan struct {
	Operations []Operation
}

// Empty reports whether the plan has no operations.
func (p Plan) Empty() bool {
	return len(p.Operations) == 0
}

// CountMismatchError is returned when the video and subtitle counts differ.
type CountMismatchError struct {
	Videos    int
	Subtitles int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("numbers of video files and subtitle files do not match: %d videos, %d subtitles", e.Videos, e.Subtitles)
}

// Build pairs subtitles to videos. Counts include duplicates. Videos without an
// episode number are dropped and the last video wins when two share a number.
// Subtitles without a number, or without a matching video, are skipped.
func Build(videos, subtitles []string, extract ExtractFunc) (Plan, error) {
	if len(videos) != len(subtitles) {
		return Plan{}, &CountMismatchError{Videos: len(videos), Subtitles: len(subtitles)}
	}

	byEpisode := make(map[uint32]string, len(videos))
	for _, video := range videos {
		if n, ok := extract(video); ok {
			byEpisode[n] = video
		}
	}

	var ops []Operation
	for _, subtitle := range subtitles {
		n, ok := extract(subtitle)
		if !ok {
			continue
		}
		video, ok := byEpisode[n]
		if !ok {
			continue
		}
		ops = append(ops, Operation{
			Episode: n,
			OldName: subtitle,
			NewName: TargetName(video, subtitle),
		})
	}

	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Episode < ops[j].Episode
	})
	return Plan{Operations: ops}, nil
}

// TargetName is the video name without its extension followed by the
// subtitle's extension, case preserved.
func TargetName(video, subtitle string) string {
	return strings.TrimSuffix(video, filepath.Ext(video)) + filepath.Ext(subtitle)
}
