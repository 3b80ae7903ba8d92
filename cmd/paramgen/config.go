// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	modeGrid   = "grid"
	modeRandom = "random"

	defaultMode       = modeRandom
	defaultN          = 10
	defaultResolution = 5
	defaultFormat     = "json"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
)

// Config is the resolved paramgen configuration.
type Config struct {
	Mode       string `mapstructure:"mode" validate:"oneof=grid random"`
	N          int    `mapstructure:"n" validate:"min=0"`
	Resolution int    `mapstructure:"resolution" validate:"min=1"`
	Seed       int64  `mapstructure:"seed"`
	Format     string `mapstructure:"format" validate:"oneof=json yaml"`
	Trafo      bool   `mapstructure:"trafo"`
	Strict     bool   `mapstructure:"strict"`
	LogLevel   string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat  string `mapstructure:"log_format" validate:"oneof=text json"`

	DeclPath string `mapstructure:"-"`
}

// loadConfig layers defaults, an optional config file, PARAMGEN_* environment
// variables and explicitly set flags, then validates the result.
func loadConfig(path string, flags map[string]string) (*Config, error) {
	v := viper.New()
	v.SetDefault("mode", defaultMode)
	v.SetDefault("n", defaultN)
	v.SetDefault("resolution", defaultResolution)
	v.SetDefault("seed", 0)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("trafo", false)
	v.SetDefault("strict", false)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_format", defaultLogFormat)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("PARAMGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for k, val := range flags {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Mode = strings.ToLower(cfg.Mode)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
