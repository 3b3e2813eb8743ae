package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type LogEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name           string
		verbosityLevel int
		logFunc        func(Logger)
		expectedLevel  string
		expectedMsg    string
		shouldLog      bool
	}{
		{
			name:           "info level with default verbosity",
			verbosityLevel: 0,
			logFunc: func(l Logger) {
				l.Info("info message")
			},
			expectedLevel: "info",
			expectedMsg:   "info message",
			shouldLog:     true,
		},
		{
			name:           "warn level with default verbosity",
			verbosityLevel: 0,
			logFunc: func(l Logger) {
				l.Warn("warn message")
			},
			expectedLevel: "warn",
			expectedMsg:   "warn message",
			shouldLog:     true,
		},
		{
			name:           "debug level with insufficient verbosity",
			verbosityLevel: 0,
			logFunc: func(l Logger) {
				l.Debug("debug message")
			},
			shouldLog: false,
		},
		{
			name:           "debug level with sufficient verbosity",
			verbosityLevel: 1,
			logFunc: func(l Logger) {
				l.Debug("debug message")
			},
			expectedLevel: "debug",
			expectedMsg:   "debug message",
			shouldLog:     true,
		},
		{
			name:           "trace level with insufficient verbosity",
			verbosityLevel: 1,
			logFunc: func(l Logger) {
				l.Trace("trace message")
			},
			shouldLog: false,
		},
		{
			name:           "trace level with sufficient verbosity",
			verbosityLevel: 2,
			logFunc: func(l Logger) {
				l.Trace("trace message")
			},
			expectedLevel: "trace",
			expectedMsg:   "trace message",
			shouldLog:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewLogger(Config{
				Verbosity: tt.verbosityLevel,
				Output:    &buf,
			})

			tt.logFunc(log)

			if !tt.shouldLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry LogEntry
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "raw output: %s", buf.String())
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.expectedMsg, entry.Message)
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{Output: &buf})

	log.WithFields(Fields{
		"path":  "./a.c",
		"lines": 3,
	}).Info("test message")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "./a.c", entry["path"])
	assert.Equal(t, float64(3), entry["lines"])
	assert.Equal(t, "test message", entry["message"])
}

func TestLoggerWithFieldsDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{Output: &buf})

	log.WithFields(Fields{"scoped": true}).Info("first")
	log.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"scoped":true`)
	assert.NotContains(t, lines[1], "scoped")
}
