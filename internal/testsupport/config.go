package testsupport

import (
	"path/filepath"
	"testing"

	"subrename/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a default config whose log file lives in a per-test temp
// directory, then applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.File = filepath.Join(base, "logs", "subrename.log")

	builder := &configBuilder{cfg: &cfgVal}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithScanMode overrides the scan mode.
func WithScanMode(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.Mode = mode
	}
}

// WithMinVideoBytes overrides the video size floor.
func WithMinVideoBytes(size int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.MinVideoBytes = size
	}
}

// WithoutLogFile disables file logging.
func WithoutLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = ""
	}
}
