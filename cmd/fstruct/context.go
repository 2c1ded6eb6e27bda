package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"fstruct/internal/config"
	"fstruct/internal/logging"
)

const (
	logStderr  = "stderr"
	logDiscard = "discard"
)

type commandContext struct {
	configFlag *string
	overrides  *config.Overrides

	configOnce  sync.Once
	config      config.Config
	configPath  string
	configFound bool
	configErr   error
}

func newCommandContext(configFlag *string, overrides *config.Overrides) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		overrides:  overrides,
	}
}

func (c *commandContext) ensureConfig() (config.Config, error) {
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
		if err := c.overrides.Apply(&cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configFound = exists
	})
	return c.config, c.configErr
}

// logger builds a run-tagged logger; fallback applies when no log file is
// configured.
func (c *commandContext) logger(fallback string) (*slog.Logger, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, closer, err := logging.NewFromConfig(cfg, fallback)
	if err != nil {
		return nil, nil, err
	}
	tagged, _ := logging.WithRunID(logger)
	return tagged, func() { _ = closer.Close() }, nil
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
