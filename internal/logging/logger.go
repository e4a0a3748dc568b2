// Package logging provides structured, leveled logging for netreport with
// colorized human output.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogLevel represents the severity level of a log entry.
type LogLevel string

// Log severity levels.
const (
	// LevelDebug enables debug-level logging.
	LevelDebug LogLevel = "debug"
	// LevelInfo enables info-level logging.
	LevelInfo LogLevel = "info"
	// LevelWarn enables warn-level logging.
	LevelWarn LogLevel = "warn"
	// LevelError enables error-level logging.
	LevelError LogLevel = "error"
)

// LogFormat represents the output format for log entries.
type LogFormat string

// Log output formats.
const (
	// FormatJSON outputs logs as JSON.
	FormatJSON LogFormat = "json"
	// FormatHuman outputs logs in colorized human-readable format (default).
	FormatHuman LogFormat = "human"
)

// levelColors maps each severity to the color used for human output.
// Color output is suppressed automatically on non-terminal writers and
// when NO_COLOR is set; the fatih/color package handles both.
var levelColors = map[LogLevel]*color.Color{
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgWhite),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

// Logger provides structured leveled logging. Diagnostic output defaults to
// stderr on both streams so the rendered report keeps sole ownership of
// stdout.
type Logger struct {
	level  LogLevel
	format LogFormat
	out    io.Writer
	errOut io.Writer
	mu     sync.Mutex
}

// logEntry represents a single log entry in JSON format.
type logEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// New creates a new Logger instance.
func New(level LogLevel, format LogFormat) *Logger {
	return &Logger{
		level:  level,
		format: format,
		out:    os.Stderr,
		errOut: os.Stderr,
	}
}

// SetOutput sets custom output writers for testing.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = out
	l.errOut = errOut
}

// Debug logs a debug-level message.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.log(LevelDebug, msg, mergeFields(fields...))
}

// Info logs an info-level message.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.log(LevelInfo, msg, mergeFields(fields...))
}

// Warn logs a warn-level message.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	l.log(LevelWarn, msg, mergeFields(fields...))
}

// Error logs an error-level message.
func (l *Logger) Error(msg string, fields ...map[string]any) {
	l.log(LevelError, msg, mergeFields(fields...))
}

// log writes a log entry to the appropriate output stream.
func (l *Logger) log(level LogLevel, msg string, fields map[string]any) {
	if !l.shouldLog(level) {
		return
	}

	entry := logEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   msg,
		Fields:    fields,
	}

	var output string
	if l.format == FormatJSON {
		output = l.formatJSON(entry)
	} else {
		output = l.formatHuman(level, entry)
	}

	l.write(level, output)
}

// shouldLog determines if a message at the given level should be logged.
func (l *Logger) shouldLog(level LogLevel) bool {
	levels := map[LogLevel]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}

	return levels[level] >= levels[l.level]
}

// formatJSON formats a log entry as JSON.
func (l *Logger) formatJSON(entry logEntry) string {
	data, err := json.Marshal(entry)
	if err != nil {
		// Fallback if JSON marshaling fails
		return fmt.Sprintf(`{"timestamp":"%s","level":"error","message":"failed to marshal log entry: %s"}`,
			time.Now().UTC().Format(time.RFC3339), err.Error())
	}
	return string(data) + "\n"
}

// formatHuman formats a log entry in human-readable format, colored by
// severity.
func (l *Logger) formatHuman(level LogLevel, entry logEntry) string {
	var line strings.Builder
	line.WriteString(fmt.Sprintf("[%s] %s: %s", entry.Timestamp, entry.Level, entry.Message))

	for k, v := range entry.Fields {
		line.WriteString(fmt.Sprintf(" %s=%v", k, v))
	}

	c, ok := levelColors[level]
	if !ok {
		c = levelColors[LevelInfo]
	}

	return c.Sprint(line.String()) + "\n"
}

// write writes the formatted output to the appropriate stream.
func (l *Logger) write(level LogLevel, output string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	writer := l.out
	if level == LevelError {
		writer = l.errOut
	}

	_, _ = writer.Write([]byte(output))
}

// mergeFields merges multiple field maps into one.
func mergeFields(fields ...map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}

	merged := make(map[string]any)
	for _, f := range fields {
		maps.Copy(merged, f)
	}

	return merged
}

// WithFields creates a new logger with additional fields.
func (l *Logger) WithFields(fields map[string]any) *ContextLogger {
	return &ContextLogger{
		logger: l,
		fields: fields,
	}
}

// ContextLogger wraps a Logger with context-specific fields.
type ContextLogger struct {
	logger *Logger
	fields map[string]any
}

// Debug logs a debug-level message with context fields.
func (cl *ContextLogger) Debug(msg string, fields ...map[string]any) {
	cl.logger.Debug(msg, mergeFields(append([]map[string]any{cl.fields}, fields...)...))
}

// Info logs an info-level message with context fields.
func (cl *ContextLogger) Info(msg string, fields ...map[string]any) {
	cl.logger.Info(msg, mergeFields(append([]map[string]any{cl.fields}, fields...)...))
}

// Warn logs a warn-level message with context fields.
func (cl *ContextLogger) Warn(msg string, fields ...map[string]any) {
	cl.logger.Warn(msg, mergeFields(append([]map[string]any{cl.fields}, fields...)...))
}

// Error logs an error-level message with context fields.
func (cl *ContextLogger) Error(msg string, fields ...map[string]any) {
	cl.logger.Error(msg, mergeFields(append([]map[string]any{cl.fields}, fields...)...))
}
