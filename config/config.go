// Copyright 2025 Cloudbase Solutions SRL
//
//    Licensed under the Apache License, Version 2.0 (the "License"); you may
//    not use this file except in compliance with the License. You may obtain
//    a copy of the License at
//
//         http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
//    WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
//    License for the specific language governing permissions and limitations
//    under the License.

package config

import (
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	apolloErrors "github.com/apollo-cli/apollo/errors"
)

type LogLevel string
type LogFormat string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// NewConfig loads the config from cfgFile. An empty path, or a path that
// does not exist, yields the default config.
func NewConfig(cfgFile string) (*Config, error) {
	config := Default()
	if cfgFile == "" {
		return config, nil
	}

	if _, err := os.Stat(cfgFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, errors.Wrap(err, "accessing config file")
	}

	if _, err := toml.DecodeFile(cfgFile, config); err != nil {
		return nil, errors.Wrap(err, "decoding toml")
	}
	config.Logging.setDefaults()
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return config, nil
}

// Default returns a config with all fields set to their default values.
func Default() *Config {
	cfg := &Config{}
	cfg.Logging.setDefaults()
	return cfg
}

type Config struct {
	Logging Logging `toml:"logging" json:"logging"`
}

// Validate validates the config
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return errors.Wrap(err, "validating logging config")
	}
	return nil
}

// Logging holds the settings for the application logger.
type Logging struct {
	// LogFile is the location of the log file. When empty, logs are
	// written to standard error.
	LogFile string `toml:"log_file,omitempty" json:"log-file,omitempty"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel LogLevel `toml:"log_level" json:"log-level"`
	// LogFormat is either text or json.
	LogFormat LogFormat `toml:"log_format" json:"log-format"`
	// EnableLogSource adds the source file and line to every record.
	EnableLogSource bool `toml:"log_source" json:"log-source"`
}

func (l *Logging) setDefaults() {
	if l.LogLevel == "" {
		l.LogLevel = LevelInfo
	}
	if l.LogFormat == "" {
		l.LogFormat = FormatText
	}
}

func (l *Logging) Validate() error {
	switch l.LogLevel {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return apolloErrors.NewBadRequestError("invalid log level: %q", l.LogLevel)
	}

	switch l.LogFormat {
	case FormatText, FormatJSON:
	default:
		return apolloErrors.NewBadRequestError("invalid log format: %q", l.LogFormat)
	}
	return nil
}

// SlogLevel returns the slog.Level matching LogLevel. Unknown values map
// to slog.LevelInfo.
func (l Logging) SlogLevel() slog.Level {
	switch l.LogLevel {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
