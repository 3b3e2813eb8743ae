// Package logger provides structured logging capabilities for the application.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields maps field names to values attached to a log entry.
type Fields map[string]interface{}

// Logger defines the logging operations used across linecount.
type Logger interface {
	// Debug logs a message at debug level. Only shown when verbosity >= 1
	Debug(msg string)

	// Info logs a message at info level. Always shown.
	Info(msg string)

	// Warn logs a message at warn level. Always shown.
	Warn(msg string)

	// Error logs a message at error level. Always shown.
	Error(msg string)

	// Trace logs a message at trace level. Only shown when verbosity >= 2
	Trace(msg string)

	// WithFields returns a Logger that adds fields to every entry it writes.
	WithFields(fields Fields) Logger
}

// Config holds the configuration for creating a new logger instance.
type Config struct {
	// Verbosity determines the logging level:
	// 0: Info, Warn, Error (default)
	// 1: Debug + Level 0
	// 2: Trace + Level 1
	Verbosity int

	// Output specifies where logs should be written.
	// If nil, defaults to os.Stderr
	Output io.Writer
}

// TraceLevel sits one step below zap's debug level.
const TraceLevel = zapcore.DebugLevel - 1

type logger struct {
	zap *zap.Logger
}

// NewLogger creates a Logger writing JSON entries to config.Output.
//
// Example:
//
//	log := NewLogger(Config{
//	    Verbosity: 1,
//	})
//
//	log.WithFields(Fields{
//	    "root": "..",
//	}).Info("Starting line count")
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(config.Output),
		levelFor(config.Verbosity),
	)

	return &logger{zap: zap.New(core)}
}

func levelFor(verbosity int) zapcore.LevelEnabler {
	switch {
	case verbosity <= 0:
		return zapcore.InfoLevel
	case verbosity == 1:
		return zapcore.DebugLevel
	default:
		return TraceLevel
	}
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == TraceLevel {
		enc.AppendString("trace")
		return
	}
	zapcore.LowercaseLevelEncoder(l, enc)
}

func (l *logger) Debug(msg string) { l.zap.Debug(msg) }
func (l *logger) Info(msg string)  { l.zap.Info(msg) }
func (l *logger) Warn(msg string)  { l.zap.Warn(msg) }
func (l *logger) Error(msg string) { l.zap.Error(msg) }
func (l *logger) Trace(msg string) { l.zap.Log(TraceLevel, msg) }

func (l *logger) WithFields(fields Fields) Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return &logger{zap: l.zap.With(zapFields...)}
}
