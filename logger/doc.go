// Package logger provides a small leveled logger that writes to the console
// and, optionally, to an append-only log file.
//
// # Line Format
//
// Every record is rendered as
//
//	<timestamp>:<name>:<LEVEL>:<message>
//
// with the timestamp formatted by Config.TimestampFormat (default
// 2006-01-02:15:04:05). Colons and newlines inside messages are not escaped.
//
// # Sinks
//
//   - Console: every call prints to stdout when Config.ConsoleOutput is set,
//     whatever its level. Config.Colorize colors the level field.
//   - File: only messages at or above Config.Level are appended. The file is
//     opened and closed for each record, so no handle is held between calls.
//
// At construction an existing file is truncated with ModeWrite and kept with
// ModeAppend; a missing one is created.
//
// Journald priority prefixes are added to plain console output when
// JOURNAL_STREAM is set.
//
// # Usage
//
//	log, err := logger.New(logger.Config{
//	    Name:          "svc",
//	    FilePath:      "svc.log",
//	    FileMode:      logger.ModeAppend,
//	    Level:         logger.WarningLevel,
//	    ConsoleOutput: true,
//	})
//	if err != nil {
//	    return err
//	}
//	log.Info("starting")          // console only
//	log.Errorf("failed: %v", err) // console and file
//
// # Wrapping Calls
//
// WrapFunc and Wrap log "About to run" and "Done running" around a call, log
// an optional description, and log errors and panics before handing them
// back to the caller unchanged:
//
//	load := logger.Wrap(log, loadUser, logger.WithDoc("loads a user by id"))
//	user, err := load(42)
//
// A Logger is safe for concurrent use. Separate Loggers pointing at the same
// file only rely on the operating system's append semantics.
package logger
