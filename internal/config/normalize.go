package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeSort()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.SourceDir) != "" {
		if c.Paths.SourceDir, err = expandPath(c.Paths.SourceDir); err != nil {
			return fmt.Errorf("paths.source_dir: %w", err)
		}
	} else {
		c.Paths.SourceDir = ""
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	exts := make([]string, 0, len(c.Scan.VideoExtensions))
	seen := make(map[string]struct{}, len(c.Scan.VideoExtensions))
	for _, ext := range c.Scan.VideoExtensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = defaultVideoExtensions()
	}
	c.Scan.VideoExtensions = exts

	c.Scan.FFprobeBinary = strings.TrimSpace(c.Scan.FFprobeBinary)
	if c.Scan.FFprobeBinary == "" {
		c.Scan.FFprobeBinary = defaultFFprobeBinary
	}
	if c.Scan.ProbeTimeoutSeconds <= 0 {
		c.Scan.ProbeTimeoutSeconds = defaultProbeTimeoutSeconds
	}
}

func (c *Config) normalizeSort() {
	c.Sort.DurationMethod = strings.ToLower(strings.TrimSpace(c.Sort.DurationMethod))
	if c.Sort.DurationMethod == "" {
		c.Sort.DurationMethod = defaultMethod
	}
	c.Sort.QualityMethod = strings.ToLower(strings.TrimSpace(c.Sort.QualityMethod))
	if c.Sort.QualityMethod == "" {
		c.Sort.QualityMethod = defaultMethod
	}
	if c.Sort.NumCategories == 0 {
		c.Sort.NumCategories = defaultNumCategories
	}
	if c.Sort.DurationShortMax <= 0 {
		c.Sort.DurationShortMax = defaultDurationShortMax
	}
	if c.Sort.DurationMediumMax <= 0 {
		c.Sort.DurationMediumMax = defaultDurationMediumMax
	}
	if c.Sort.QualityHighMin <= 0 {
		c.Sort.QualityHighMin = defaultQualityHighMin
	}
	if c.Sort.QualityMediumMin <= 0 {
		c.Sort.QualityMediumMin = defaultQualityMediumMin
	}
	if c.Sort.BitrateFactor <= 0 {
		c.Sort.BitrateFactor = defaultBitrateFactor
	}
	if c.Sort.BitrateThresholdKbps <= 0 {
		c.Sort.BitrateThresholdKbps = defaultBitrateThresholdKbps
	}
	if c.Sort.SplitFolderSize <= 0 {
		c.Sort.SplitFolderSize = defaultSplitFolderSize
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
