package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	envVars := []string{
		"LINECOUNT_BUFFER_SIZE",
		"LINECOUNT_NO_COLOR",
		"LINECOUNT_VERBOSE",
	}

	tests := []struct {
		name     string
		envVars  map[string]string
		expected Config
		wantErr  bool
		errMsg   string
	}{
		{
			name: "default configuration",
			expected: Config{
				BufferSize: 4096,
			},
		},
		{
			name: "configuration from environment variables",
			envVars: map[string]string{
				"LINECOUNT_BUFFER_SIZE": "8192",
				"LINECOUNT_NO_COLOR":    "true",
				"LINECOUNT_VERBOSE":     "vv",
			},
			expected: Config{
				BufferSize: 8192,
				NoColor:    true,
				Verbose:    2,
			},
		},
		{
			name: "numeric verbosity",
			envVars: map[string]string{
				"LINECOUNT_VERBOSE": "3",
			},
			expected: Config{
				BufferSize: 4096,
				Verbose:    3,
			},
		},
		{
			name: "boolean parsing - numeric true",
			envVars: map[string]string{
				"LINECOUNT_NO_COLOR": "1",
			},
			expected: Config{
				BufferSize: 4096,
				NoColor:    true,
			},
		},
		{
			name: "invalid verbosity",
			envVars: map[string]string{
				"LINECOUNT_VERBOSE": "loud",
			},
			wantErr: true,
			errMsg:  "invalid verbosity",
		},
		{
			name: "invalid buffer size - negative",
			envVars: map[string]string{
				"LINECOUNT_BUFFER_SIZE": "-1",
			},
			wantErr: true,
			errMsg:  "buffer size must be positive",
		},
		{
			name: "invalid buffer size - too small",
			envVars: map[string]string{
				"LINECOUNT_BUFFER_SIZE": "63",
			},
			wantErr: true,
			errMsg:  "buffer size must be at least 64 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, env := range envVars {
				os.Unsetenv(env)
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid configuration",
			config: Config{BufferSize: 4096, Verbose: 1},
		},
		{
			name:   "minimum buffer size",
			config: Config{BufferSize: MinBufferSize},
		},
		{
			name:    "zero buffer size",
			config:  Config{BufferSize: 0},
			wantErr: true,
			errMsg:  "buffer size must be at least 64 bytes",
		},
		{
			name:    "negative verbosity",
			config:  Config{BufferSize: 4096, Verbose: -1},
			wantErr: true,
			errMsg:  "verbosity must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := Config{BufferSize: 128, NoColor: true, Verbose: 2}
	assert.Equal(t, "Config{BufferSize: 128, NoColor: true, Verbose: 2}", cfg.String())
}
