package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// BaseLogger implements the Logger interface.
type BaseLogger struct {
	mu        sync.Mutex
	level     Level
	fields    Fields
	formatter Formatter
	out       io.Writer
}

// LoggerOption is a function that configures a logger.
type LoggerOption func(*BaseLogger)

// WithLevel sets the minimum level of the logger.
func WithLevel(level Level) LoggerOption {
	return func(l *BaseLogger) { l.level = level }
}

// WithFormatter sets the formatter used by the logger.
func WithFormatter(f Formatter) LoggerOption {
	return func(l *BaseLogger) { l.formatter = f }
}

// WithOutput sets the writer log entries are written to.
func WithOutput(w io.Writer) LoggerOption {
	return func(l *BaseLogger) { l.out = w }
}

// NewLogger creates a logger writing text-formatted entries to stderr.
func NewLogger(options ...LoggerOption) *BaseLogger {
	l := &BaseLogger{
		level:     InfoLevel,
		fields:    Fields{},
		formatter: NewTextFormatter(),
		out:       os.Stderr,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Debug logs a message at the debug level with fields.
func (l *BaseLogger) Debug(msg string, fields ...Field) {
	if l.level <= DebugLevel {
		l.log(DebugLevel, msg, fields)
	}
}

// Info logs a message at the info level with fields.
func (l *BaseLogger) Info(msg string, fields ...Field) {
	if l.level <= InfoLevel {
		l.log(InfoLevel, msg, fields)
	}
}

// Warn logs a message at the warn level with fields.
func (l *BaseLogger) Warn(msg string, fields ...Field) {
	if l.level <= WarnLevel {
		l.log(WarnLevel, msg, fields)
	}
}

// Error logs a message at the error level with fields.
func (l *BaseLogger) Error(msg string, fields ...Field) {
	if l.level <= ErrorLevel {
		l.log(ErrorLevel, msg, fields)
	}
}

// With returns a new logger carrying the given fields on every entry.
func (l *BaseLogger) With(fields ...Field) Logger {
	merged := Fields{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	return &BaseLogger{
		level:     l.level,
		fields:    merged,
		formatter: l.formatter,
		out:       l.out,
	}
}

// WithComponent tags logs with a component name.
func (l *BaseLogger) WithComponent(component string) Logger {
	return l.With(Component(component))
}

// SetLevel sets the minimum log level.
func (l *BaseLogger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *BaseLogger) GetLevel() Level {
	return l.level
}

func (l *BaseLogger) log(level Level, msg string, fields []Field) {
	entry := &Entry{
		Level:     level,
		Message:   msg,
		Fields:    Fields{},
		Timestamp: time.Now(),
	}
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	formatted, err := l.formatter.Format(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Write(append(formatted, '\n'))
}

var (
	defaultLogger   Logger = NewLogger()
	defaultLoggerMu sync.Mutex
)

// GetDefaultLogger returns the process-wide default logger.
func GetDefaultLogger() Logger {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	return defaultLogger
}

// SetDefaultLogger replaces the process-wide default logger.
func SetDefaultLogger(logger Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}
