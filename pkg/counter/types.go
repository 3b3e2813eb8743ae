package counter

import "time"

// Options carries the per-call traversal state. The zero value plus
// PrintHeader is a fresh top-level count.
type Options struct {
	// InitialTotal is the running total carried in from a parent call
	InitialTotal int64

	// PrintHeader writes the report header and divider before any row
	PrintHeader bool

	// OriginalRoot is the root of the first call. Display paths are made
	// relative to it; when empty the root passed to Count is used.
	OriginalRoot string
}

// Config contains counter configuration options
type Config struct {
	// BufferSize is the read buffer size used while counting lines
	BufferSize int
}

// Stats describes the last traversal.
type Stats struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	FilesCounted int64
	FilesSkipped int64
	DirsVisited  int64
	BytesRead    int64
	TotalLines   int64
}

// DefaultBufferSize is used when Config.BufferSize is not positive.
const DefaultBufferSize = 4096
