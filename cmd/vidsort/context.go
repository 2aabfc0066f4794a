package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"vidsort/internal/config"
	"vidsort/internal/logging"
	"vidsort/internal/media"
	"vidsort/internal/services"
)

type commandContext struct {
	configFlag    *string
	directoryFlag *string
	jsonFlag      *bool
	verboseFlag   *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, directoryFlag *string, jsonFlag, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		directoryFlag: directoryFlag,
		jsonFlag:      jsonFlag,
		verboseFlag:   verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger once. --verbose lowers the level to
// debug regardless of the configured one.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		if c.verbose() {
			verboseCfg := *cfg
			verboseCfg.Logging.Level = "debug"
			cfg = &verboseCfg
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) jsonMode() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

// resolveDir picks the directory a command operates on. A positional
// argument wins over --directory, which wins over paths.source_dir.
func (c *commandContext) resolveDir(args []string) (string, error) {
	candidate := ""
	if len(args) > 0 {
		candidate = strings.TrimSpace(args[0])
	}
	if candidate == "" && c.directoryFlag != nil {
		candidate = strings.TrimSpace(*c.directoryFlag)
	}
	if candidate == "" {
		cfg, err := c.ensureConfig()
		if err != nil {
			return "", err
		}
		candidate = strings.TrimSpace(cfg.Paths.SourceDir)
	}
	if candidate == "" {
		return "", services.Wrap(services.ErrConfiguration, "cli", "resolve directory",
			"No directory given and paths.source_dir is not configured", nil)
	}
	return config.ExpandPath(candidate)
}

func (c *commandContext) prober() (media.Prober, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return media.Prober{}, err
	}
	return media.Prober{
		Binary:  cfg.FFprobeBinary(),
		Timeout: time.Duration(cfg.Scan.ProbeTimeoutSeconds) * time.Second,
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
