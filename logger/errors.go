package logger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every configuration validation error.
	ErrInvalidConfig = errors.New("invalid logger configuration")
	// ErrFileAccess is matched by every failure to create or append to the log file.
	ErrFileAccess = errors.New("log file access failed")
)

// ConfigError describes a rejected configuration field.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s can not be %q, %s", e.Field, fmt.Sprint(e.Value), e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// FileError wraps an OS error raised while touching the log file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("log file %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFileAccess) hold for any FileError.
func (e *FileError) Is(target error) bool { return target == ErrFileAccess }
