package logger

import (
	"fmt"
	"strings"
)

// Level defines log severity.
type Level int

const (
	// DebugLevel is the most verbose level.
	DebugLevel Level = iota
	// InfoLevel is for informational messages.
	InfoLevel
	// WarningLevel is for warnings.
	WarningLevel
	// ErrorLevel is for errors.
	ErrorLevel
	// CriticalLevel is the most severe level.
	CriticalLevel
)

// NoLevel disables a bookkeeping message when passed to a WrapOption.
// It is never a valid threshold.
const NoLevel Level = -1

// AllLevels returns the five severity levels in ascending order.
func AllLevels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarningLevel,
		ErrorLevel,
		CriticalLevel,
	}
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case NoLevel:
		return "NONE"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

func (l Level) valid() bool {
	return l >= DebugLevel && l <= CriticalLevel
}

// ParseLevel parses a level name. Matching is case-insensitive and accepts
// WARN, CRIT and NONE in addition to the canonical names.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "CRIT":
		return CriticalLevel, nil
	case "NONE":
		return NoLevel, nil
	}
	return NoLevel, &ConfigError{
		Field:  "logging_level",
		Value:  s,
		Reason: `it has to be "DEBUG", "INFO", "WARNING", "ERROR" or "CRITICAL"`,
	}
}

// ShouldPersist reports whether a message at level reaches the file sink of
// a logger configured with threshold.
func ShouldPersist(threshold, level Level) bool {
	return level >= threshold
}

// FileMode selects what happens to an existing log file at construction.
type FileMode string

const (
	// ModeWrite truncates an existing file.
	ModeWrite FileMode = "w"
	// ModeAppend keeps existing content.
	ModeAppend FileMode = "a"
)

// ParseFileMode parses "w" or "a". The "w+" and "a+" spellings are accepted too.
func ParseFileMode(s string) (FileMode, error) {
	switch strings.TrimSpace(s) {
	case "w", "w+":
		return ModeWrite, nil
	case "a", "a+":
		return ModeAppend, nil
	}
	return "", &ConfigError{Field: "file_mode", Value: s, Reason: `it has to be "w" or "a"`}
}
