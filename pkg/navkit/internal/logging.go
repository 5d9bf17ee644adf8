package internal

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
)

// LogFormat selects how log records are written.
type LogFormat int

const (
	LogFormatJSON    LogFormat = iota // One JSON object per line
	LogFormatConsole                  // Human-readable, colored when writing to a terminal
)

var (
	logFile   *os.File
	logPath   string
	logFormat = LogFormatJSON

	setupOnce   sync.Once
	configMu    sync.Mutex
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
func SetLogPath(path string) {
	logPath = path
}

// SetLogFormat selects the output format. Only effective before the first
// logger is created.
func SetLogFormat(format LogFormat) {
	logFormat = format
}

// ParseLogFormat maps "json" and "console"/"text" to a LogFormat.
func ParseLogFormat(raw string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "console", "text", "pretty":
		return LogFormatConsole
	default:
		return LogFormatJSON
	}
}

func setup() {
	setupOnce.Do(func() {
		multiWriter, _ = openWriter(logPath)
	})
}

// openWriter returns stderr, teed into the log file at path when one is set.
// If the file cannot be opened it falls back to stderr alone.
func openWriter(path string) (io.Writer, error) {
	if path == "" {
		return os.Stderr, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return os.Stderr, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return os.Stderr, err
	}

	logFile = f
	return io.MultiWriter(os.Stderr, f), nil
}

// Configure switches both loggers to a new destination and format, closing
// any log file opened earlier. Levels are kept. Loggers obtained before the
// call keep their old handlers, so configure before creating coordinators.
func Configure(path string, format LogFormat) error {
	configMu.Lock()
	defer configMu.Unlock()

	CloseLogger()
	logPath = path
	logFormat = format

	w, err := openWriter(path)
	setupOnce.Do(func() {})
	multiWriter = w

	GetLogger()
	GetInternalLogger()
	logger = slog.New(NewHandler(w, format, levelVar))
	internalLogger = slog.New(NewHandler(w, format, internalLevelVar)).With("component", "navkit")
	return err
}

// NewHandler builds the slog handler used by navkit loggers.
// Console output is rendered by charmbracelet/log.
func NewHandler(w io.Writer, format LogFormat, level slog.Leveler) slog.Handler {
	if format == LogFormatConsole {
		cl := charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Prefix:          "navkit",
		})
		// charmlog filters by its own level; slog's level is applied by levelHandler.
		cl.SetLevel(charmlog.DebugLevel)
		return &levelHandler{Handler: cl, level: level}
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
}

// levelHandler gates a handler on a slog.Leveler so LevelVar changes apply
// to console output too.
type levelHandler struct {
	slog.Handler
	level slog.Leveler
}

func (h *levelHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{Handler: h.Handler.WithGroup(name), level: h.level}
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		setup()
		logger = slog.New(NewHandler(multiWriter, logFormat, levelVar))
	})
	return logger
}

// GetInternalLogger returns the logger navkit packages use for their own
// diagnostics. It defaults to Error unless NAVKIT_DEBUG is set.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		if constants.IsDebug() {
			internalLevelVar.Set(slog.LevelDebug)
		} else {
			internalLevelVar.Set(slog.LevelError)
		}

		setup()
		internalLogger = slog.New(NewHandler(multiWriter, logFormat, internalLevelVar)).
			With("component", "navkit")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
