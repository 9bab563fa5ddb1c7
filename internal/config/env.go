package config

import (
	"os"
	"strconv"

	"github.com/mordilloSan/go-filelogger/logger"
)

// Environment variables read by ApplyEnv.
const (
	EnvName            = "LOGGER_NAME"
	EnvFile            = "LOGGER_FILE"
	EnvFileMode        = "LOGGER_FILE_MODE"
	EnvLevel           = "LOGGER_LEVEL"
	EnvConsole         = "LOGGER_CONSOLE"
	EnvTimestampFormat = "LOGGER_TIMESTAMP_FORMAT"
	EnvBanner          = "LOGGER_BANNER"
	EnvColorize        = "LOGGER_COLORIZE"
)

// ApplyEnv overrides section fields with the LOGGER_* variables that are set.
// Boolean variables that do not parse match logger.ErrInvalidConfig.
func ApplyEnv(s *Section) error {
	s.Name = GetString(EnvName, s.Name)
	if v, ok := os.LookupEnv(EnvFile); ok {
		s.FileName = &v
	}
	s.FileMode = GetString(EnvFileMode, s.FileMode)
	s.LoggingLevel = GetString(EnvLevel, s.LoggingLevel)
	s.TimestampFormat = GetString(EnvTimestampFormat, s.TimestampFormat)

	for key, dst := range map[string]**bool{
		EnvConsole:  &s.ConsoleOutput,
		EnvBanner:   &s.Banner,
		EnvColorize: &s.Colorize,
	} {
		v, ok, err := GetBool(key)
		if err != nil {
			return err
		}
		if ok {
			*dst = &v
		}
	}
	return nil
}

// GetString returns the variable or fallback when it is unset.
func GetString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}

// GetBool parses the variable with strconv.ParseBool. ok is false when it is unset.
func GetBool(key string) (val, ok bool, err error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return false, false, nil
	}
	val, err = strconv.ParseBool(raw)
	if err != nil {
		return false, false, &logger.ConfigError{Field: key, Value: raw, Reason: "it has to be a boolean"}
	}
	return val, true, nil
}
