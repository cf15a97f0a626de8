package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// ParseLevel translates a string representation of a log level to the level enum
func ParseLevel(level string) (int, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("Unknown log level %s", level)
	}
}

// Logger writes messages at or above a minimum level of criticality
type Logger struct {
	source string
	level  int
	out    *log.Logger
}

// CreateLogger returns a new Logger writing to w. Messages below level are discarded.
func CreateLogger(w io.Writer, source string, level int) *Logger {
	return &Logger{
		source: source,
		level:  level,
		out:    log.New(w, "", log.LstdFlags),
	}
}

// Default returns a Logger writing INFO messages and above to stderr
func Default(source string) *Logger {
	return CreateLogger(os.Stderr, source, InfoLevel)
}

// Discard returns a Logger which writes nothing
func Discard() *Logger {
	return CreateLogger(io.Discard, "", FatalLevel+1)
}

// With returns a copy of this Logger which reports messages from a different source
func (l *Logger) With(source string) *Logger {
	return &Logger{source: source, level: l.level, out: l.out}
}

// Enabled returns true iff messages at the given level will be written
func (l *Logger) Enabled(level int) bool {
	return l != nil && level >= l.level
}

// Logf writes a formatted message at the given level
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.out.Printf("%s: level [%s]: %s", l.source, LogLevelToString(level), fmt.Sprintf(format, args...))
}

// Debugf writes a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(DebugLevel, format, args...)
}

// Infof writes a formatted message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(InfoLevel, format, args...)
}

// Warnf writes a formatted message at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Logf(WarnLevel, format, args...)
}

// Errorf writes a formatted message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(ErrorLevel, format, args...)
}
