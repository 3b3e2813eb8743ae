package config

// Constants for configuration limits and defaults
const (
	// MinBufferSize is the minimum allowed read buffer size in bytes
	MinBufferSize = 64

	// DefaultBufferSize is the default read buffer size in bytes
	DefaultBufferSize = 4096

	// DefaultRoot is scanned when no path is given: the parent of the
	// working directory, so running from a repo's utils/ counts the repo.
	DefaultRoot = ".."
)
