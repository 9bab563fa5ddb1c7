package config

import (
	"errors"
	"os"
	"testing"

	"github.com/mordilloSan/go-filelogger/logger"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvName, "from-env")
	t.Setenv(EnvFile, "env.log")
	t.Setenv(EnvFileMode, "a")
	t.Setenv(EnvLevel, "CRITICAL")
	t.Setenv(EnvConsole, "false")
	t.Setenv(EnvBanner, "1")

	s := Section{Name: "from-file", LoggingLevel: "DEBUG"}
	if err := ApplyEnv(&s); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if s.Name != "from-env" {
		t.Errorf("name = %q, want from-env", s.Name)
	}
	if s.FileName == nil || *s.FileName != "env.log" {
		t.Errorf("file_name = %v, want env.log", s.FileName)
	}
	if s.FileMode != "a" || s.LoggingLevel != "CRITICAL" {
		t.Errorf("file_mode/logging_level = %q/%q", s.FileMode, s.LoggingLevel)
	}
	if s.ConsoleOutput == nil || *s.ConsoleOutput {
		t.Errorf("console_output = %v, want false", s.ConsoleOutput)
	}
	if s.Banner == nil || !*s.Banner {
		t.Errorf("banner = %v, want true", s.Banner)
	}
	if s.Colorize != nil {
		t.Errorf("colorize should stay unset, got %v", *s.Colorize)
	}
}

func TestApplyEnvKeepsUnset(t *testing.T) {
	for _, key := range []string{EnvName, EnvFile, EnvFileMode, EnvLevel, EnvConsole, EnvTimestampFormat, EnvBanner, EnvColorize} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	s := Section{Name: "svc", FileMode: "w"}
	if err := ApplyEnv(&s); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if s.Name != "svc" || s.FileMode != "w" || s.FileName != nil || s.ConsoleOutput != nil {
		t.Errorf("section changed without env: %+v", s)
	}
}

func TestApplyEnvInvalidBool(t *testing.T) {
	t.Setenv(EnvConsole, "maybe")

	err := ApplyEnv(&Section{Name: "svc"})
	if !errors.Is(err, logger.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got: %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv(EnvName, "")
	os.Unsetenv(EnvName)
	t.Setenv(EnvLevel, "INFO")

	path := writeTemp(t, ".env", "LOGGER_NAME=dotenv\nLOGGER_LEVEL=ERROR\n")
	if err := LoadDotEnv(path, path+".missing"); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	if got := os.Getenv(EnvName); got != "dotenv" {
		t.Errorf("%s = %q, want dotenv", EnvName, got)
	}
	if got := os.Getenv(EnvLevel); got != "INFO" {
		t.Errorf("existing %s should not be overridden, got %q", EnvLevel, got)
	}
}
