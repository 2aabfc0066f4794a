package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Setting is one recognized key with its effective value, used by config show.
type Setting struct {
	Key   string
	Value string
}

// Settings returns every recognized key with its effective value.
func (c *Config) Settings() []Setting {
	return []Setting{
		{"paths.source_dir", c.Paths.SourceDir},
		{"paths.log_dir", c.Paths.LogDir},
		{"scan.video_extensions", strings.Join(c.Scan.VideoExtensions, ",")},
		{"scan.ffprobe_binary", c.Scan.FFprobeBinary},
		{"scan.probe_timeout_seconds", strconv.Itoa(c.Scan.ProbeTimeoutSeconds)},
		{"sort.duration_method", c.Sort.DurationMethod},
		{"sort.quality_method", c.Sort.QualityMethod},
		{"sort.num_categories", strconv.Itoa(c.Sort.NumCategories)},
		{"sort.duration_short_max", formatFloat(c.Sort.DurationShortMax)},
		{"sort.duration_medium_max", formatFloat(c.Sort.DurationMediumMax)},
		{"sort.quality_high_min", formatFloat(c.Sort.QualityHighMin)},
		{"sort.quality_medium_min", formatFloat(c.Sort.QualityMediumMin)},
		{"sort.bitrate_factor", formatFloat(c.Sort.BitrateFactor)},
		{"sort.bitrate_threshold_kbps", strconv.Itoa(c.Sort.BitrateThresholdKbps)},
		{"sort.split_folder_size", strconv.Itoa(c.Sort.SplitFolderSize)},
		{"logging.level", c.Logging.Level},
		{"logging.format", c.Logging.Format},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SetValue applies a single key mutation to the config file at path (or the
// default location), validates the result, and writes the file back. Keys use
// the section.field form shown by config show. The file keeps only explicitly
// set values; everything else continues to come from defaults at load time.
func SetValue(path, key, value string) (string, error) {
	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return "", err
	}

	raw := map[string]any{}
	if exists {
		data, err := os.ReadFile(resolved)
		if err != nil {
			return "", fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return "", fmt.Errorf("parse config: %w", err)
		}
	}

	section, field, ok := strings.Cut(strings.TrimSpace(key), ".")
	if !ok || section == "" || field == "" {
		return "", fmt.Errorf("unknown config key %q (expected section.field)", key)
	}

	parsed, err := parseKeyValue(section+"."+field, value)
	if err != nil {
		return "", err
	}

	sub, _ := raw[section].(map[string]any)
	if sub == nil {
		sub = map[string]any{}
	}
	sub[field] = parsed
	raw[section] = sub

	data, err := toml.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("apply %s: %w", key, err)
	}
	if err := cfg.normalize(); err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if dir := filepath.Dir(resolved); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return resolved, nil
}

func parseKeyValue(key, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch key {
	case "paths.source_dir", "paths.log_dir",
		"scan.ffprobe_binary",
		"sort.duration_method", "sort.quality_method",
		"logging.level", "logging.format":
		return value, nil
	case "scan.probe_timeout_seconds", "sort.num_categories",
		"sort.bitrate_threshold_kbps", "sort.split_folder_size":
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s: expected integer, got %q", key, value)
		}
		return parsed, nil
	case "sort.duration_short_max", "sort.duration_medium_max",
		"sort.quality_high_min", "sort.quality_medium_min",
		"sort.bitrate_factor":
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: expected number, got %q", key, value)
		}
		return parsed, nil
	case "scan.video_extensions":
		parts := strings.Split(value, ",")
		exts := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				exts = append(exts, trimmed)
			}
		}
		if len(exts) == 0 {
			return nil, fmt.Errorf("%s: expected comma-separated extensions", key)
		}
		return exts, nil
	default:
		return nil, fmt.Errorf("unknown config key %q", key)
	}
}
