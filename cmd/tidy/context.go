package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/logging"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

// logger builds the run logger from the loaded configuration, falling back
// to a no-op logger when the log file cannot be opened. The returned function
// closes the log file and is safe to defer in every case.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, func()) {
	noop := func() {}
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.NewNop(), noop
	}
	logger, closeLog, err := logging.NewFromConfig(cfg, c.verbose())
	if err != nil {
		cmd.PrintErrf("logging disabled: %v\n", err)
		return logging.NewNop(), noop
	}
	return logger, func() {
		if err := closeLog(); err != nil {
			cmd.PrintErrf("close log file: %v\n", err)
		}
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
