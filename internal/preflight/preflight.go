package preflight

import (
	"vidsort/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every readiness check the configuration calls for.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Source directory", cfg.Paths.SourceDir),
		CheckLogDir("Log directory", cfg.Paths.LogDir),
		CheckFFprobe(cfg.FFprobeBinary()),
	}
}
