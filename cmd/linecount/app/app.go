/*
Package app provides the application container for linecount. It builds the
logger, filesystem, report writer and counter from the configuration and
runs a single count.

Usage:

	a := app.New(cfg)
	total, err := a.Run("..")
*/
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/sonemaro/linecount/internal/config"
	"github.com/sonemaro/linecount/pkg/counter"
	"github.com/sonemaro/linecount/pkg/logger"
	"github.com/sonemaro/linecount/pkg/report"
	"github.com/spf13/afero"
)

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger

	fs        afero.Fs
	out       io.Writer
	logOutput io.Writer

	counter counter.Counter
}

// Option customizes an App before its components are built.
type Option func(*App)

// WithFs replaces the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.fs = fs }
}

// WithOutput sends the report to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithLogOutput sends log entries to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(a *App) { a.logOutput = w }
}

// New creates a new application instance
func New(cfg *config.Config, opts ...Option) *App {
	a := &App{
		config:    cfg,
		fs:        afero.NewOsFs(),
		out:       os.Stdout,
		logOutput: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.initLogger()
	a.initComponents()

	return a
}

// Run counts the lines under path, writing the report as it goes, and
// returns the grand total.
func (a *App) Run(path string) (int64, error) {
	a.log.WithFields(logger.Fields{
		"path": path,
	}).Debug("Running line count")

	total, err := a.counter.CountTree(path)
	if err != nil {
		return total, fmt.Errorf("line count failed: %w", err)
	}

	return total, nil
}

// Stats returns statistics from the last run.
func (a *App) Stats() counter.Stats {
	return a.counter.Stats()
}

func (a *App) initLogger() {
	a.log = logger.NewLogger(logger.Config{
		Verbosity: a.config.Verbose,
		Output:    a.logOutput,
	})

	a.log.WithFields(logger.Fields{
		"verbosity": a.config.Verbose,
	}).Debug("Logger initialized")
}

func (a *App) initComponents() {
	a.log.WithFields(logger.Fields{
		"config": a.config.String(),
	}).Debug("Initializing application components")

	out := report.NewWriter(report.Config{
		NoColor: a.config.NoColor,
	}, a.out)

	a.counter = counter.NewCounter(counter.Config{
		BufferSize: a.config.BufferSize,
	}, a.fs, out, a.log)
}
