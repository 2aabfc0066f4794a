package config

import (
	"errors"
	"fmt"

	"vidsort/internal/thresholds"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateSort(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if len(c.Scan.VideoExtensions) == 0 {
		return errors.New("scan.video_extensions must include at least one extension")
	}
	if c.Scan.ProbeTimeoutSeconds <= 0 {
		return errors.New("scan.probe_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateSort() error {
	if _, err := thresholds.ParseMethod(c.Sort.DurationMethod); err != nil {
		return fmt.Errorf("sort.duration_method: %w", err)
	}
	if _, err := thresholds.ParseMethod(c.Sort.QualityMethod); err != nil {
		return fmt.Errorf("sort.quality_method: %w", err)
	}
	if c.Sort.NumCategories != 2 && c.Sort.NumCategories != 3 {
		return errors.New("sort.num_categories must be 2 or 3")
	}
	if c.Sort.NumCategories == 3 {
		if c.Sort.DurationMediumMax <= c.Sort.DurationShortMax {
			return errors.New("sort.duration_medium_max must be greater than sort.duration_short_max")
		}
		if c.Sort.QualityHighMin <= c.Sort.QualityMediumMin {
			return errors.New("sort.quality_high_min must be greater than sort.quality_medium_min")
		}
	}
	if c.Sort.BitrateFactor <= 0 {
		return errors.New("sort.bitrate_factor must be positive")
	}
	if c.Sort.BitrateThresholdKbps <= 0 {
		return errors.New("sort.bitrate_threshold_kbps must be positive")
	}
	if c.Sort.SplitFolderSize <= 0 {
		return errors.New("sort.split_folder_size must be positive")
	}
	return nil
}
