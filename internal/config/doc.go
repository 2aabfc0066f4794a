// Package config loads, normalizes, and validates vidsort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI and the sorting engine need: the extension allow-list, threshold methods
// and fixed cutoffs, the bitrate model, and logging output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical method names, and clear validation errors.
package config
