// Package config loads, normalizes, and validates subrename configuration data.
//
// Every setting has a default, so the tool runs with no file present. When a
// TOML file exists it is decoded over the defaults, then normalized (paths
// expanded, enum values lowercased, human-readable sizes parsed) and validated.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
