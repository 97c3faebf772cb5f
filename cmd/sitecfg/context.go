package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"sitecfg/internal/config"
	"sitecfg/internal/logging"
)

const (
	envLogLevel  = "SITECFG_LOG_LEVEL"
	envLogFormat = "SITECFG_LOG_FORMAT"
)

type rootFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *rootFlags

	logger *slog.Logger

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags, logger: logging.NewNop()}
}

func (c *commandContext) initLogger(w io.Writer) error {
	level := firstNonEmpty(c.flags.logLevel, os.Getenv(envLogLevel))
	format := firstNonEmpty(c.flags.logFormat, os.Getenv(envLogFormat))
	logger, err := logging.New(logging.Options{Level: level, Format: format, Writer: w})
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

// ensureConfig loads the site configuration once per invocation.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		logger := logging.NewComponentLogger(c.logger, "config")
		cfg, path, err := config.Load(strings.TrimSpace(c.flags.config))
		c.configPath = path
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			logger.Debug("site config rejected", logging.String(logging.FieldPath, path), logging.Error(err))
			return
		}
		logger.Debug("site config loaded",
			logging.String(logging.FieldPath, path),
			logging.Int("locales", len(cfg.Locale)),
			logging.Int("socials", len(cfg.Socials)),
		)
		c.config = cfg
	})
	return c.config, c.configErr
}

// shouldSkipConfig reports whether cmd runs without a site configuration:
// the bare root, cobra's built-in help and completion commands, and commands
// annotated with skipConfigLoad.
func shouldSkipConfig(cmd *cobra.Command) bool {
	if !cmd.HasParent() {
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
