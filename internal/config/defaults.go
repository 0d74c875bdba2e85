package config

const (
	// ScanModeSingle lists the directory once with a unified filter.
	ScanModeSingle = "single"
	// ScanModeDouble lists the directory twice and concatenates both passes.
	ScanModeDouble = "double"

	defaultScanMode      = ScanModeSingle
	defaultMinVideoSize  = "200 MiB"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Mode:          defaultScanMode,
			MinVideoSize:  defaultMinVideoSize,
			MinVideoBytes: 200 * 1024 * 1024,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}
