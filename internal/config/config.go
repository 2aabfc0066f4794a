package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	SourceDir string `toml:"source_dir"`
	LogDir    string `toml:"log_dir"`
}

// Scan contains configuration for discovering and probing video files.
type Scan struct {
	VideoExtensions     []string `toml:"video_extensions"`
	FFprobeBinary       string   `toml:"ffprobe_binary"`
	ProbeTimeoutSeconds int      `toml:"probe_timeout_seconds"`
}

// Sort contains configuration for category boundaries and folder layout.
type Sort struct {
	// DurationMethod and QualityMethod select how boundaries are derived:
	// fixed, percentile, stddev, kmeans, or jenks.
	DurationMethod string `toml:"duration_method"`
	QualityMethod  string `toml:"quality_method"`
	// NumCategories is the bucket count per dimension, 2 or 3.
	NumCategories int `toml:"num_categories"`

	// Static cutoffs used by the fixed method. Durations are seconds,
	// quality bounds are bitrate/optimal ratios.
	DurationShortMax  float64 `toml:"duration_short_max"`
	DurationMediumMax float64 `toml:"duration_medium_max"`
	QualityHighMin    float64 `toml:"quality_high_min"`
	QualityMediumMin  float64 `toml:"quality_medium_min"`

	// BitrateFactor scales width*height*fps into the optimal bitrate.
	BitrateFactor float64 `toml:"bitrate_factor"`
	// BitrateThresholdKbps drives the simple two-way bitrate split.
	BitrateThresholdKbps int `toml:"bitrate_threshold_kbps"`
	// SplitFolderSize is the per-folder file cap for the split command.
	SplitFolderSize int `toml:"split_folder_size"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for vidsort.
//
// Configuration sections by subsystem:
//   - Paths: source directory and log directory
//   - Scan: extension allow-list and ffprobe settings
//   - Sort: threshold methods, fixed cutoffs, and folder layout knobs
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Scan    Scan    `toml:"scan"`
	Sort    Sort    `toml:"sort"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/vidsort/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("vidsort.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// FFprobeBinary returns the ffprobe executable to run, defaulting to the one
// on PATH.
func (c *Config) FFprobeBinary() string {
	if bin := strings.TrimSpace(c.Scan.FFprobeBinary); bin != "" {
		return bin
	}
	return "ffprobe"
}

// HasExtension reports whether name carries one of the recognized video
// extensions. Matching is case-insensitive.
func (c *Config) HasExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, allowed := range c.Scan.VideoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
