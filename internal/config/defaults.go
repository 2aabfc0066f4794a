package config

const (
	defaultLogDir               = "~/.local/share/vidsort/logs"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultFFprobeBinary        = "ffprobe"
	defaultProbeTimeoutSeconds  = 30
	defaultMethod               = "fixed"
	defaultNumCategories        = 3
	defaultDurationShortMax     = 60.0
	defaultDurationMediumMax    = 300.0
	defaultQualityHighMin       = 1.0
	defaultQualityMediumMin     = 0.5
	defaultBitrateFactor        = 0.13
	defaultBitrateThresholdKbps = 300
	defaultSplitFolderSize      = 100
)

func defaultVideoExtensions() []string {
	return []string{".mp4", ".avi", ".mov", ".mkv", ".webm", ".flv", ".wmv"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Scan: Scan{
			VideoExtensions:     defaultVideoExtensions(),
			FFprobeBinary:       defaultFFprobeBinary,
			ProbeTimeoutSeconds: defaultProbeTimeoutSeconds,
		},
		Sort: Sort{
			DurationMethod:       defaultMethod,
			QualityMethod:        defaultMethod,
			NumCategories:        defaultNumCategories,
			DurationShortMax:     defaultDurationShortMax,
			DurationMediumMax:    defaultDurationMediumMax,
			QualityHighMin:       defaultQualityHighMin,
			QualityMediumMin:     defaultQualityMediumMin,
			BitrateFactor:        defaultBitrateFactor,
			BitrateThresholdKbps: defaultBitrateThresholdKbps,
			SplitFolderSize:      defaultSplitFolderSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
