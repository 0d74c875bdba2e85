package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"subrename/internal/episode"
	"subrename/internal/logging"
)

// DefaultMinVideoBytes is the size a video must strictly exceed (200 MiB).
const DefaultMinVideoBytes int64 = 200 * 1024 * 1024

// VideoExtensions lists recognized video suffixes.
var VideoExtensions = []string{".mkv", ".mp4", ".MKV", ".MP4"}

// SubtitleExtensions lists recognized subtitle suffixes.
var SubtitleExtensions = []string{".ass", ".ssa", ".srt", ".ASS", ".SRT", ".SSA", ".sub", ".SUB"}

// Mode selects how many listings feed the result.
type Mode int

const (
	// ModeSingle lists the directory once.
	ModeSingle Mode = iota
	// ModeDouble lists the directory twice: once by extension regardless of
	// size, once with the size gate. Both passes are concatenated.
	ModeDouble
)

// ParseMode maps a config value to a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "single":
		return ModeSingle, nil
	case "double":
		return ModeDouble, nil
	default:
		return ModeSingle, fmt.Errorf("unknown scan mode %q", value)
	}
}

func (m Mode) String() string {
	if m == ModeDouble {
		return "double"
	}
	return "single"
}

// Options configures a scan.
type Options struct {
	Mode Mode
	// MinVideoBytes is the size a video must strictly exceed. Nil selects
	// DefaultMinVideoBytes; zero keeps every non-empty video.
	MinVideoBytes *int64
	Logger        *slog.Logger
}

// Result holds classified filenames in directory order.
type Result struct {
	Videos    []string
	Subtitles []string
}

// IsVideo reports whether name ends with a recognized video suffix.
func IsVideo(name string) bool {
	return hasAnySuffix(name, VideoExtensions)
}

// IsSubtitle reports whether name ends with a recognized subtitle suffix.
func IsSubtitle(name string) bool {
	return hasAnySuffix(name, SubtitleExtensions)
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Scan classifies the entries of dir.
func Scan(dir string, opts Options) (Result, error) {
	logger := logging.NewComponentLogger(opts.Logger, "scanner")
	minVideoBytes := DefaultMinVideoBytes
	if opts.MinVideoBytes != nil {
		minVideoBytes = *opts.MinVideoBytes
	}

	var result Result
	if opts.Mode == ModeDouble {
		if err := scanByExtension(dir, &result, logger); err != nil {
			return Result{}, err
		}
	}
	if err := scanSized(dir, &result, minVideoBytes, opts.Mode == ModeSingle, logger); err != nil {
		return Result{}, err
	}

	logger.Info("scan complete",
		logging.String("mode", opts.Mode.String()),
		logging.Int("videos", len(result.Videos)),
		logging.Int("subtitles", len(result.Subtitles)),
	)
	return result, nil
}

// scanByExtension matches the extension component exactly, logs each hit and
// keeps it regardless of size.
func scanByExtension(dir string, result *Result, logger *slog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		switch {
		case ext == "":
		case slices.Contains(VideoExtensions, ext):
			logClassified(logger, "video file", name)
			result.Videos = append(result.Videos, name)
		case slices.Contains(SubtitleExtensions, ext):
			logClassified(logger, "subtitle file", name)
			result.Subtitles = append(result.Subtitles, name)
		}
	}
	return nil
}

// scanSized keeps regular files only and applies the size floor to videos.
func scanSized(dir string, result *Result, minVideoBytes int64, logHits bool, logger *slog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		video := IsVideo(name)
		subtitle := IsSubtitle(name)
		if !video && !subtitle {
			continue
		}

		// Unreadable metadata aborts the scan, dangling symlinks included.
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read metadata for %s: %w", name, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		if video {
			if info.Size() <= minVideoBytes {
				logger.Debug("video below size floor",
					logging.String(logging.FieldFile, name),
					logging.String("size", humanize.IBytes(uint64(info.Size()))),
					logging.Int64("bytes", info.Size()),
					logging.String("floor", humanize.IBytes(uint64(minVideoBytes))),
				)
				continue
			}
			if logHits {
				logClassified(logger, "video file", name)
			}
			result.Videos = append(result.Videos, name)
			continue
		}

		if logHits {
			logClassified(logger, "subtitle file", name)
		}
		result.Subtitles = append(result.Subtitles, name)
	}
	return nil
}

func logClassified(logger *slog.Logger, msg, name string) {
	n, ok := episode.Extract(name)
	logger.Info(msg, logging.String(logging.FieldFile, name), logging.Episode(n, ok))
}
