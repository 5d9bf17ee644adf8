// Package navkit provides navigation state management for view-tree based
// applications: per-level push stacks, modal presentation chains, parent and
// child coordinators, and deep-link dispatch.
//
// The state machine lives in the subpackages:
//   - navigation: views and how they are displayed
//   - router: one presentation level
//   - coordinator: flows made of routers, and their children
//   - deeplink: link dispatch and TOML route tables
//   - i18n: localized view titles
//
// This package handles process-wide setup: logging and configuration.
package navkit

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
)

// Options configures navkit initialization.
type Options struct {
	LogPath          string // Full path for log file including filename (creates parent directories)
	LogLevel         string // Application log level: debug, info, warn, error
	InternalLogLevel string // Level for navkit's own diagnostics (default: error, debug with NAVKIT_DEBUG)
	LogFormat        string // "json" (default) or "console"
}

// Init configures logging. Empty fields fall back to the NAVKIT_* environment
// variables. Call before creating coordinators so they pick up the settings.
//
// Init may be called again to reconfigure. It returns an error if the log
// file cannot be opened; logging then continues on stderr.
func Init(options Options) error {
	format := options.LogFormat
	if format == "" {
		format = os.Getenv(constants.LogFormatEnvVar)
	}
	err := internal.Configure(options.LogPath, internal.ParseLogFormat(format))

	level := options.LogLevel
	if level == "" {
		level = os.Getenv(constants.LogLevelEnvVar)
	}
	internal.SetRawLogLevel(level)

	switch {
	case options.InternalLogLevel != "":
		internal.SetInternalLogLevel(internal.ParseLevel(options.InternalLogLevel))
	case constants.IsDebug():
		internal.SetInternalLogLevel(slog.LevelDebug)
	default:
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if err != nil {
		return NewConfigError("open_log", err)
	}
	return nil
}

// Close flushes and closes the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Only effective before the first
// logger is created; use Init to change the path later.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// GetInternalLogger returns the logger navkit packages report through.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum level for navkit's own diagnostics.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
