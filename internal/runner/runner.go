package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"subrename/internal/config"
	"subrename/internal/episode"
	"subrename/internal/logging"
	"subrename/internal/planner"
	"subrename/internal/preflight"
	"subrename/internal/renamer"
	"subrename/internal/scanner"
)

var (
	// ErrNoMatches means no subtitle could be paired with a video.
	ErrNoMatches = errors.New("no matching video and subtitle files found")
	// ErrLocked means another run holds the directory lock.
	ErrLocked = errors.New("another subrename run is processing this directory")
)

// Options configures a run.
type Options struct {
	// Dir overrides the media directory. Empty means the executable's directory.
	Dir    string
	Config *config.Config
	Logger *slog.Logger
	// LockDir holds lock files. Defaults to os.TempDir().
	LockDir string
	// Rename replaces os.Rename, mainly for tests.
	Rename renamer.RenameFunc
}

// Report summarizes a run.
type Report struct {
	RunID    string
	Dir      string
	Scan     scanner.Result
	Plan     planner.Plan
	Outcomes []renamer.Outcome
	Mismatch *planner.CountMismatchError
}

// ResolveDir returns override when set, otherwise the directory containing
// the running executable.
func ResolveDir(override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		dir, err := config.ExpandPath(strings.TrimSpace(override))
		if err != nil {
			return "", fmt.Errorf("resolve directory: %w", err)
		}
		return dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get executable path: %w", err)
	}
	dir := filepath.Dir(exe)
	if dir == "" || dir == exe {
		return "", fmt.Errorf("get parent directory of executable %s", exe)
	}
	return dir, nil
}

// Run performs one pass.
func Run(ctx context.Context, opts Options) (Report, error) {
	cfg := opts.Config
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	mode, err := scanner.ParseMode(cfg.Scan.Mode)
	if err != nil {
		return Report{}, err
	}

	report := Report{RunID: uuid.NewString()}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String(logging.FieldRunID, report.RunID))

	dir, err := ResolveDir(opts.Dir)
	if err != nil {
		logger.Error("cannot determine working directory", logging.Error(err))
		return report, err
	}
	report.Dir = dir
	logger.Info("current directory", logging.String(logging.FieldDirectory, dir))

	if check := preflight.CheckDirectoryAccess("media directory", dir); !check.Passed {
		logger.Warn("preflight check failed", logging.String("detail", check.Detail), logging.Alert("directory_access"))
	}

	unlock, err := lockDirectory(opts.LockDir, dir)
	if err != nil {
		logger.Error("cannot lock directory", logging.Error(err))
		return report, err
	}
	defer unlock()

	minVideoBytes := cfg.Scan.MinVideoBytes
	result, err := scanner.Scan(dir, scanner.Options{
		Mode:          mode,
		MinVideoBytes: &minVideoBytes,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("scan failed", logging.Error(err))
		return report, err
	}
	report.Scan = result

	plan, err := planner.Build(result.Videos, result.Subtitles, episode.Extract)
	var mismatch *planner.CountMismatchError
	if errors.As(err, &mismatch) {
		report.Mismatch = mismatch
		logger.Warn("numbers of video files and subtitle files do not match",
			logging.Int("videos", mismatch.Videos),
			logging.Int("subtitles", mismatch.Subtitles),
		)
		return report, nil
	}
	if err != nil {
		return report, err
	}
	report.Plan = plan

	if plan.Empty() {
		logger.Error(ErrNoMatches.Error())
		return report, ErrNoMatches
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	r := renamer.New(dir, logger)
	if opts.Rename != nil {
		r.Rename = opts.Rename
	}
	report.Outcomes = r.Apply(plan)

	logger.Info("rename pass complete",
		logging.Int("planned", len(plan.Operations)),
		logging.Int("failed", renamer.Failed(report.Outcomes)),
	)
	return report, nil
}

func lockDirectory(lockDir, dir string) (func(), error) {
	if lockDir == "" {
		lockDir = os.TempDir()
	}
	name := "subrename-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(dir)).String() + ".lock"
	lock := flock.New(filepath.Join(lockDir, name))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() {
		_ = os.Remove(lock.Path())
		_ = lock.Unlock()
	}, nil
}
