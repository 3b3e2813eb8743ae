package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// BufferSize is the size of the buffer used while counting lines
	BufferSize int

	// NoColor disables styled report output
	NoColor bool

	// Verbose sets the verbosity level
	Verbose int
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("buffer_size", DefaultBufferSize)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("LINECOUNT")
	v.AutomaticEnv()

	v.BindEnv("buffer_size")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	verbose, err := parseVerbosity(v.GetString("verbose"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BufferSize: v.GetInt("buffer_size"),
		NoColor:    v.GetBool("no_color"),
		Verbose:    verbose,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parseVerbosity accepts either a count ("2") or a run of v's ("vv").
func parseVerbosity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if strings.Trim(s, "v") == "" {
		return len(s), nil
	}
	return 0, fmt.Errorf("invalid verbosity %q: use a number or a run of 'v'", s)
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer size must be positive")
	}
	if c.BufferSize < MinBufferSize {
		return fmt.Errorf("buffer size must be at least %d bytes", MinBufferSize)
	}

	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf("Config{BufferSize: %d, NoColor: %v, Verbose: %d}",
		c.BufferSize, c.NoColor, c.Verbose)
}
