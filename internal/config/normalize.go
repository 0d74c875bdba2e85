package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

func (c *Config) normalize() error {
	if err := c.normalizeScan(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeScan() error {
	c.Scan.Mode = strings.ToLower(strings.TrimSpace(c.Scan.Mode))
	if c.Scan.Mode == "" {
		c.Scan.Mode = defaultScanMode
	}

	c.Scan.MinVideoSize = strings.TrimSpace(c.Scan.MinVideoSize)
	if c.Scan.MinVideoSize == "" {
		c.Scan.MinVideoSize = defaultMinVideoSize
	}
	size, err := humanize.ParseBytes(c.Scan.MinVideoSize)
	if err != nil {
		return fmt.Errorf("scan.min_video_size: %w", err)
	}
	if size > math.MaxInt64 {
		return fmt.Errorf("scan.min_video_size: %q is too large", c.Scan.MinVideoSize)
	}
	c.Scan.MinVideoBytes = int64(size)
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
