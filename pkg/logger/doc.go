/*
Package logger provides structured logging for linecount. It wraps
uber-go/zap behind a small interface so the counter and the CLI can log
without depending on zap directly, and so tests can swap in a mock.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0, // info and above
	})

	log.Info("Starting line count")
	log.Debug("Reading directory") // verbosity >= 1
	log.Trace("Skipping file")     // verbosity >= 2

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Structured Logging:

	log.WithFields(logger.Fields{
	    "path":  "./src/main.c",
	    "lines": 120,
	}).Debug("File counted")

Output Example (JSON, one object per line on stderr):

	{"level":"info","ts":"2024-01-20T15:04:05.000Z","message":"Line count completed","total":48213,"files":311}

Trace entries are emitted at their own level and encoded as "trace".
Standard output is left to the report.
*/
package logger
