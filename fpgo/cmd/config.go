package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

// Config holds the settings shared by all commands. Flags override the config file.
type Config struct {
	LogLevel  slog.Level
	LogFormat string
	Verify    bool
	Repeat    uint64
}

func DefaultConfig() Config {
	return Config{
		LogLevel:  log.LevelInfo,
		LogFormat: LogFormatLogfmt,
		Verify:    false,
		Repeat:    1,
	}
}

type fileConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Verify    bool   `toml:"verify"`
	Repeat    uint64 `toml:"repeat"`
}

// LoadConfig reads a TOML config file, keys left out keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("log_level") {
		lvl, err := ParseLevel(raw.LogLevel)
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}

	if meta.IsDefined("verify") {
		cfg.Verify = raw.Verify
	}

	if meta.IsDefined("repeat") {
		cfg.Repeat = raw.Repeat
	}

	if err := cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Check() error {
	switch c.LogFormat {
	case LogFormatLogfmt, LogFormatJSON, LogFormatTerminal:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Repeat == 0 {
		return fmt.Errorf("repeat must be at least 1")
	}
	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	case "crit":
		return log.LevelCrit, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// ConfigFromContext loads the --config file, if any, and applies flag overrides.
func ConfigFromContext(ctx *cli.Context) (Config, error) {
	cfg := DefaultConfig()
	if path := ctx.Path(ConfigFlag.Name); path != "" {
		c, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = c
	}
	if ctx.IsSet(LogLevelFlag.Name) {
		lvl, err := ParseLevel(ctx.String(LogLevelFlag.Name))
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = lvl
	}
	if ctx.IsSet(LogFormatFlag.Name) {
		cfg.LogFormat = ctx.String(LogFormatFlag.Name)
	}
	if ctx.IsSet(RunVerifyFlag.Name) {
		cfg.Verify = ctx.Bool(RunVerifyFlag.Name)
	}
	if ctx.IsSet(RunRepeatFlag.Name) {
		cfg.Repeat = ctx.Uint64(RunRepeatFlag.Name)
	}
	if err := cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
