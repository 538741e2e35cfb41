package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Kiosk logs are JSON lines on stdout, copied to a file when a path is set.
// The kiosk channel records scans and screen changes; the internal channel
// records SDL, fonts, input devices and decoder detail, and stays quiet
// unless debugging.
var (
	outputMu   sync.Mutex
	outputOnce sync.Once
	output     io.Writer = os.Stdout
	logFile    *os.File
	logPath    string

	kioskLog    = &logChannel{component: "kiosk"}
	internalLog = &logChannel{component: "internal"}
)

type logChannel struct {
	component string
	once      sync.Once
	level     slog.LevelVar
	logger    *slog.Logger
}

func (c *logChannel) get() *slog.Logger {
	c.once.Do(func() {
		c.logger = slog.New(slog.NewJSONHandler(openOutput(), &slog.HandlerOptions{
			Level: &c.level,
		})).With("component", c.component)
	})
	return c.logger
}

// SetLogPath names the file logs are copied to. It only takes effect before
// the first logger is created. Missing directories are created.
func SetLogPath(path string) {
	outputMu.Lock()
	defer outputMu.Unlock()
	logPath = path
}

func openOutput() io.Writer {
	outputOnce.Do(func() {
		outputMu.Lock()
		defer outputMu.Unlock()

		if logPath == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Stdout alone still reaches the journal.
			return
		}
		logFile = f
		output = io.MultiWriter(os.Stdout, f)
	})
	return output
}

// GetLogger returns the kiosk logger.
func GetLogger() *slog.Logger {
	return kioskLog.get()
}

// GetInternalLogger returns the logger for display and device plumbing.
func GetInternalLogger() *slog.Logger {
	return internalLog.get()
}

func SetLogLevel(level slog.Level) {
	kioskLog.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLog.level.Set(level)
}

// SetRawLogLevel sets the kiosk level from a config value such as "debug".
func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a slog level.
// Anything else is treated as info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CloseLogger closes the log file. Later records go to stdout only.
// Safe to call more than once.
func CloseLogger() {
	outputMu.Lock()
	defer outputMu.Unlock()

	if logFile == nil {
		return
	}
	logFile.Close()
	logFile = nil
}
