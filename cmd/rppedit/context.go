package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"rppedit/internal/config"
	"rppedit/internal/history"
	"rppedit/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared logger from config. Config failures fall
// back to a no-op logger; the failure itself surfaces when the command asks
// for config.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// openHistory returns the operation journal, or nil when history is
// disabled.
func (c *commandContext) openHistory() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, nil
	}
	if err := cfg.EnsureHistoryDir(); err != nil {
		return nil, err
	}
	return history.Open(cfg.History.Path)
}

// recordHistory journals an operation on a best-effort basis; failures are
// logged, never fatal.
func (c *commandContext) recordHistory(ctx context.Context, op history.Operation) {
	store, err := c.openHistory()
	if err != nil {
		c.ensureLogger().Warn("history unavailable", "error", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()
	if _, err := store.Record(ctx, op); err != nil {
		c.ensureLogger().Warn("record history", "error", err)
	}
}
