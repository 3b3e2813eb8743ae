// Package config provides configuration management for linecount. Settings
// come from environment variables and may be overridden by command-line
// flags. None of them affect which files are counted: the extension
// allow-list and the excluded directories are fixed.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
//	LINECOUNT_BUFFER_SIZE  Read buffer size in bytes (default: 4096, minimum: 64)
//	LINECOUNT_NO_COLOR     Disable styled report output (true/false)
//	LINECOUNT_VERBOSE      Verbosity level, as a number or a run of 'v's
//
// # Validation
//
//   - BufferSize must be at least 64 bytes
//   - Verbose must be non-negative
package config
