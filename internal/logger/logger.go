package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "mackerel",
	})
	return &Logger{Logger: l}
}

// ParseLevel maps a --log-level value to a level.
func ParseLevel(s string) (log.Level, error) {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// BuildStarted logs the start of a directory build
func (l *Logger) BuildStarted(src, out string, files, jobs int) {
	l.Info("build started",
		"src", src,
		"out", out,
		"files", files,
		"jobs", jobs)
}

// BuildCompleted logs the end of a directory build
func (l *Logger) BuildCompleted(rendered, cached, failed int, written string, duration time.Duration) {
	l.Info("build completed",
		"rendered", rendered,
		"cached", cached,
		"failed", failed,
		"written", written,
		"duration", duration.Round(time.Millisecond))
}

// FileRendered logs a successfully rendered document
func (l *Logger) FileRendered(src, dest string) {
	l.Debug("file rendered",
		"src", src,
		"dest", dest)
}

// CacheHit logs when rendered output came from the disk cache
func (l *Logger) CacheHit(file, key string) {
	l.Debug("cache hit",
		"file", file,
		"key", key)
}

// FileFinished logs the final progress state of a file
func (l *Logger) FileFinished(file, status string, elapsed time.Duration) {
	l.Debug("file finished",
		"file", file,
		"status", status,
		"elapsed", elapsed.Round(time.Microsecond))
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// ConfigLoaded logs successful manifest loading
func (l *Logger) ConfigLoaded(path string, jobs int) {
	l.Debug("config loaded",
		"path", path,
		"jobs", jobs)
}
