package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/theoremus-urban-solutions/siri-relay/config"
	"github.com/theoremus-urban-solutions/siri-relay/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.AppConfig
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.AppConfig, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = config.LoadAppConfig(path)
	})
	return c.config, c.configErr
}

// logger builds the process logger from the loaded configuration; --log-level wins
// over logging.level.
func (c *commandContext) logger() *slog.Logger {
	level, format := "info", "text"
	if cfg, err := c.ensureConfig(); err == nil {
		level, format = cfg.Logging.Level, cfg.Logging.Format
	}
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		level = *c.logLevelFlag
	}
	return logging.InitLogging(level, format)
}
