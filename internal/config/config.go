// Package config loads logger settings from files and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mordilloSan/go-filelogger/logger"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

// FileConfig is the structure of a configuration file.
type FileConfig struct {
	Logger Section `yaml:"logger" json:"logger" toml:"logger"`
}

// Section holds the logger settings. Pointer fields distinguish "unset" from
// an explicit zero value.
type Section struct {
	Name            string  `yaml:"name" json:"name" toml:"name"`
	FileName        *string `yaml:"file_name" json:"file_name" toml:"file_name"`
	FileMode        string  `yaml:"file_mode" json:"file_mode" toml:"file_mode"`
	LoggingLevel    string  `yaml:"logging_level" json:"logging_level" toml:"logging_level"`
	ConsoleOutput   *bool   `yaml:"console_output" json:"console_output" toml:"console_output"`
	TimestampFormat string  `yaml:"timestamp_format" json:"timestamp_format" toml:"timestamp_format"`
	Banner          *bool   `yaml:"banner" json:"banner" toml:"banner"`
	Colorize        *bool   `yaml:"colorize" json:"colorize" toml:"colorize"`
}

// LoadFile reads a YAML, JSON/JSON5 or TOML file selected by extension.
// Decoding errors, including values of the wrong type, match logger.ErrInvalidConfig.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config FileConfig
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("%w: failed to parse YAML: %v", logger.ErrInvalidConfig, err)
		}
	case ".json", ".json5":
		if err := json5.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON: %v", logger.ErrInvalidConfig, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("%w: failed to parse TOML: %v", logger.ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	return &config, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped; existing variables are not overridden.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ToLoggerConfig converts the section to a logger.Config, starting from
// logger.DefaultConfig and applying every field that is set.
func (s Section) ToLoggerConfig() (logger.Config, error) {
	config := logger.DefaultConfig(s.Name)

	if s.FileName != nil {
		config.FilePath = *s.FileName
	}
	if s.FileMode != "" {
		mode, err := logger.ParseFileMode(s.FileMode)
		if err != nil {
			return config, err
		}
		config.FileMode = mode
	}
	if s.LoggingLevel != "" {
		level, err := logger.ParseLevel(s.LoggingLevel)
		if err != nil {
			return config, err
		}
		config.Level = level
	}
	if s.ConsoleOutput != nil {
		config.ConsoleOutput = *s.ConsoleOutput
	}
	if s.TimestampFormat != "" {
		config.TimestampFormat = s.TimestampFormat
	}
	if s.Banner != nil {
		config.Banner = *s.Banner
	}
	if s.Colorize != nil {
		config.Colorize = *s.Colorize
	}

	return config, nil
}
