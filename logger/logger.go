package logger

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"
)

// DefaultTimestampFormat renders timestamps as YYYY-MM-DD:HH:MM:SS.
const DefaultTimestampFormat = "2006-01-02:15:04:05"

// Config defines options for New.
type Config struct {
	// Name identifies the logger in every line. Required.
	Name string
	// FilePath enables the file sink; empty disables file logging.
	// Default: "" (file logging disabled)
	FilePath string
	// FileMode decides whether an existing file is truncated (ModeWrite) or kept (ModeAppend).
	// Default: ModeWrite
	FileMode FileMode
	// Level is the minimum severity written to the file. The console ignores it.
	// Default: DebugLevel
	Level Level
	// ConsoleOutput prints every line to stdout regardless of Level.
	// Default: true via DefaultConfig
	ConsoleOutput bool
	// TimestampFormat is a time.Format layout.
	// Default: DefaultTimestampFormat
	TimestampFormat string
	// Banner writes "The log <name> was created on <time>" when the file is created or truncated.
	// Default: false
	Banner bool
	// Colorize enables ANSI colors for the level field on the console. Files stay plain.
	// Default: false
	Colorize bool
}

// DefaultConfig returns a Config with console output on, DEBUG threshold and
// the default timestamp layout.
func DefaultConfig(name string) Config {
	return Config{
		Name:            name,
		FileMode:        ModeWrite,
		Level:           DebugLevel,
		ConsoleOutput:   true,
		TimestampFormat: DefaultTimestampFormat,
	}
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
	timeNow             = time.Now
)

// Logger writes leveled lines to the console and an optional log file.
// A Logger is safe for concurrent use; the file is opened and closed on every
// write so no handle outlives a call.
type Logger struct {
	mu sync.Mutex

	name     string
	filePath string
	fileMode FileMode
	level    Level
	console  bool
	colorize bool
	tsFormat string

	stdout io.Writer
	stderr io.Writer
}

// New validates config and prepares the log file if one is configured.
// Validation failures match ErrInvalidConfig; file failures match ErrFileAccess.
func New(config Config) (*Logger, error) {
	if err := validate(&config); err != nil {
		return nil, err
	}

	stdout := outStdout
	if !config.Colorize && shouldUseSyslogPrefix() {
		stdout = &syslogPrefixWriter{w: stdout}
	}

	l := &Logger{
		name:     config.Name,
		filePath: config.FilePath,
		fileMode: config.FileMode,
		level:    config.Level,
		console:  config.ConsoleOutput,
		colorize: config.Colorize,
		tsFormat: config.TimestampFormat,
		stdout:   stdout,
		stderr:   outStderr,
	}
	if l.filePath != "" {
		if err := l.prepareFile(config.Banner); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func validate(config *Config) error {
	if strings.TrimSpace(config.Name) == "" {
		return &ConfigError{Field: "name", Value: config.Name, Reason: "it has to be a non-empty string"}
	}
	switch config.FileMode {
	case "":
		config.FileMode = ModeWrite
	case ModeWrite, ModeAppend:
	default:
		mode, err := ParseFileMode(string(config.FileMode))
		if err != nil {
			return err
		}
		config.FileMode = mode
	}
	if !config.Level.valid() {
		return &ConfigError{
			Field:  "logging_level",
			Value:  config.Level,
			Reason: `it has to be "DEBUG", "INFO", "WARNING", "ERROR" or "CRITICAL"`,
		}
	}
	if config.TimestampFormat == "" {
		config.TimestampFormat = DefaultTimestampFormat
	} else if strings.TrimSpace(config.TimestampFormat) == "" {
		return &ConfigError{Field: "timestamp_format", Value: config.TimestampFormat, Reason: "it has to be a time layout"}
	}
	return nil
}

// prepareFile creates a missing file, truncates an existing one in ModeWrite
// and leaves it alone in ModeAppend.
func (l *Logger) prepareFile(banner bool) error {
	_, err := os.Stat(l.filePath)
	switch {
	case err == nil && l.fileMode == ModeAppend:
		return nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return &FileError{Op: "stat", Path: l.filePath, Err: err}
	}

	f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return &FileError{Op: "create", Path: l.filePath, Err: err}
	}
	if banner {
		line := fmt.Sprintf("The log %s was created on %s\n", l.name, timeNow().Format(l.tsFormat))
		if _, err := f.WriteString(line); err != nil {
			f.Close()
			return &FileError{Op: "write", Path: l.filePath, Err: err}
		}
	}
	if err := f.Close(); err != nil {
		return &FileError{Op: "close", Path: l.filePath, Err: err}
	}
	return nil
}

// Format renders a log record as timestamp:name:level:message followed by a newline.
// Colons and newlines inside message are not escaped.
func Format(timestamp, name string, level Level, message string) string {
	return timestamp + ":" + name + ":" + level.String() + ":" + message + "\n"
}

// SetTimestampFormat replaces the time layout. An empty layout restores the default.
func (l *Logger) SetTimestampFormat(layout string) {
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	l.mu.Lock()
	l.tsFormat = layout
	l.mu.Unlock()
}

// TimestampFormat returns the current time layout.
func (l *Logger) TimestampFormat() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tsFormat
}

// Name returns the logger name.
func (l *Logger) Name() string { return l.name }

// FilePath returns the file sink path, or "" when file logging is off.
func (l *Logger) FilePath() string { return l.filePath }

// Level returns the file threshold.
func (l *Logger) Level() Level { return l.level }

// Log writes msg at level. The file sink is used only when ShouldPersist
// holds; the console sink only depends on ConsoleOutput.
func (l *Logger) Log(level Level, msg any) error {
	text := l.coerce(msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := timeNow().Format(l.tsFormat)
	var fileErr, consoleErr error
	if l.filePath != "" && ShouldPersist(l.level, level) {
		fileErr = l.writeFile(Format(ts, l.name, level, text))
	}
	if l.console {
		consoleErr = l.writeConsole(ts, level, text)
	}
	return errors.Join(fileErr, consoleErr)
}

// coerce renders msg as text. A panicking String or Error method is reported
// on stderr and replaced by the type name.
func (l *Logger) coerce(msg any) (text string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(l.stderr, "%T can not be converted to string: %v\n", msg, r)
			text = fmt.Sprintf("<%T>", msg)
		}
	}()
	switch v := msg.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(msg)
}

func (l *Logger) writeFile(line string) error {
	f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &FileError{Op: "open", Path: l.filePath, Err: err}
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return &FileError{Op: "write", Path: l.filePath, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Op: "close", Path: l.filePath, Err: err}
	}
	return nil
}

var levelColors = map[Level]string{
	DebugLevel:    "\033[36m",
	InfoLevel:     "\033[32m",
	WarningLevel:  "\033[33m",
	ErrorLevel:    "\033[31m",
	CriticalLevel: "\033[35m",
}

const colorReset = "\033[0m"

func (l *Logger) writeConsole(ts string, level Level, text string) error {
	var line string
	if l.colorize {
		line = fmt.Sprintf("%s:%s:%s%s%s:%s\n", ts, l.name, levelColors[level], level, colorReset, text)
	} else {
		line = Format(ts, l.name, level, text)
	}
	if sw, ok := l.stdout.(*syslogPrefixWriter); ok {
		sw.prefix = syslogPrefixForLevel(level)
	}
	_, err := io.WriteString(l.stdout, line)
	return err
}

// --- Leveled logging methods ---

// Debug logs msg at DEBUG.
func (l *Logger) Debug(msg any) error { return l.Log(DebugLevel, msg) }

// Info logs msg at INFO.
func (l *Logger) Info(msg any) error { return l.Log(InfoLevel, msg) }

// Warning logs msg at WARNING.
func (l *Logger) Warning(msg any) error { return l.Log(WarningLevel, msg) }

// Error logs msg at ERROR.
func (l *Logger) Error(msg any) error { return l.Log(ErrorLevel, msg) }

// Critical logs msg at CRITICAL.
func (l *Logger) Critical(msg any) error { return l.Log(CriticalLevel, msg) }

// --- Formatted logging methods (fmt.Sprintf style) ---

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) error {
	return l.Log(DebugLevel, fmt.Sprintf(format, v...))
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) error {
	return l.Log(InfoLevel, fmt.Sprintf(format, v...))
}

// Warningf logs a warning message formatted with fmt.Sprintf.
func (l *Logger) Warningf(format string, v ...any) error {
	return l.Log(WarningLevel, fmt.Sprintf(format, v...))
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) error {
	return l.Log(ErrorLevel, fmt.Sprintf(format, v...))
}

// Criticalf logs a critical message formatted with fmt.Sprintf.
func (l *Logger) Criticalf(format string, v ...any) error {
	return l.Log(CriticalLevel, fmt.Sprintf(format, v...))
}

// operation maps a level to its bound logging method. NoLevel and unknown
// levels map to nil.
func (l *Logger) operation(level Level) func(any) error {
	switch level {
	case DebugLevel:
		return l.Debug
	case InfoLevel:
		return l.Info
	case WarningLevel:
		return l.Warning
	case ErrorLevel:
		return l.Error
	case CriticalLevel:
		return l.Critical
	default:
		return nil
	}
}

// report writes a failure of the logger itself to stderr.
func (l *Logger) report(err error) {
	if err != nil {
		fmt.Fprintf(l.stderr, "logger %s: %v\n", l.name, err)
	}
}

// String returns a human-readable summary of the configuration.
func (l *Logger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	title := "Logger detail"
	if l.colorize {
		title = "\033[1m" + title + colorReset
	}
	var b strings.Builder
	fmt.Fprintf(&b, " %s\n", title)
	fmt.Fprintf(&b, " name: %s\n", l.name)
	fmt.Fprintf(&b, " file_name: %s\n", l.filePath)
	fmt.Fprintf(&b, " file_mode: %s\n", l.fileMode)
	fmt.Fprintf(&b, " logging_level: %s\n", l.level)
	fmt.Fprintf(&b, " console_output: %t\n", l.console)
	fmt.Fprintf(&b, " timestamp_format: %s\n", l.tsFormat)
	return b.String()
}

// GoString implements fmt.GoStringer.
func (l *Logger) GoString() string {
	return fmt.Sprintf("logger.Logger(%s, %s, %s, %s, %t)", l.name, l.filePath, l.fileMode, l.level, l.console)
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

func syslogPrefixForLevel(level Level) string {
	switch level {
	case CriticalLevel:
		return "<2>"
	case ErrorLevel:
		return "<3>"
	case WarningLevel:
		return "<4>"
	case InfoLevel:
		return "<6>"
	case DebugLevel:
		return "<7>"
	default:
		return ""
	}
}

// syslogPrefixWriter prepends the syslog priority prefix to each line.
// prefix is set per write by the owning Logger under its mutex.
type syslogPrefixWriter struct {
	w      io.Writer
	prefix string
}

func (s *syslogPrefixWriter) Write(data []byte) (int, error) {
	if s.prefix == "" {
		return s.w.Write(data)
	}
	if len(data) == 0 {
		return 0, nil
	}
	buf := make([]byte, 0, len(data)+len(s.prefix))
	buf = append(buf, s.prefix...)
	for i, b := range data {
		buf = append(buf, b)
		if b == '\n' && i != len(data)-1 {
			buf = append(buf, s.prefix...)
		}
	}
	if _, err := s.w.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}
