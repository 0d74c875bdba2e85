package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	switch c.Scan.Mode {
	case ScanModeSingle, ScanModeDouble:
	default:
		return fmt.Errorf("scan.mode must be %q or %q, got %q", ScanModeSingle, ScanModeDouble, c.Scan.Mode)
	}
	if c.Scan.MinVideoBytes < 0 {
		return errors.New("scan.min_video_size must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	if c.Logging.File != "" {
		if c.Logging.MaxSizeMB <= 0 {
			return errors.New("logging.max_size_mb must be positive when logging.file is set")
		}
		if c.Logging.MaxBackups < 0 {
			return errors.New("logging.max_backups must be >= 0")
		}
	}
	return nil
}
