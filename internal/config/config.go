// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the vecreplay TOML configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the resolved tool configuration.
type Config struct {
	LogLevel      string
	NoColor       bool
	TracePath     string
	StopOnFailure bool
	Indent        string
}

type fileConfig struct {
	LogLevel      string `toml:"log_level"`
	NoColor       bool   `toml:"no_color"`
	Trace         string `toml:"trace"`
	StopOnFailure bool   `toml:"stop_on_failure"`
	Indent        string `toml:"indent"`
}

var levels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true,
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:      "info",
		TracePath:     "-",
		StopOnFailure: true,
		Indent:        "  ",
	}
}

// Load reads path over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load vecreplay config: %w", err)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("no_color") {
		cfg.NoColor = raw.NoColor
	}
	if meta.IsDefined("trace") {
		cfg.TracePath = strings.TrimSpace(raw.Trace)
	}
	if meta.IsDefined("stop_on_failure") {
		cfg.StopOnFailure = raw.StopOnFailure
	}
	if meta.IsDefined("indent") {
		cfg.Indent = raw.Indent
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the log level, the trace path and the indent.
func Validate(cfg Config) error {
	if !levels[cfg.LogLevel] {
		return fmt.Errorf("config log_level %q unknown", cfg.LogLevel)
	}
	if cfg.TracePath == "" {
		return fmt.Errorf("config missing trace path")
	}
	if strings.Trim(cfg.Indent, " \t") != "" {
		return fmt.Errorf("config indent must be whitespace")
	}
	return nil
}
