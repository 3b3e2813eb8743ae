/*
Package counter walks a directory tree depth-first and counts the lines of
every qualifying file, reporting one row per file with a running total.

Within each directory all files are counted before any subdirectory is
entered. Entries are visited in name order. The running total is passed
into each recursive call and returned from it, so a traversal never shares
state with another one.

Basic usage:

	c := counter.NewCounter(counter.Config{BufferSize: 4096}, afero.NewOsFs(),
		report.NewWriter(report.Config{}, os.Stdout), log)

	total, err := c.CountTree("..")
*/
package counter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sonemaro/linecount/pkg/logger"
	"github.com/sonemaro/linecount/pkg/report"
	"github.com/spf13/afero"
)

// Counter defines the line counting operations
type Counter interface {
	// Count counts root and everything below it, starting from
	// opts.InitialTotal, and returns the final running total.
	Count(root string, opts Options) (int64, error)

	// CountTree is a top-level Count with the header enabled.
	CountTree(root string) (int64, error)

	// Stats returns statistics about the last traversal
	Stats() Stats
}

type counter struct {
	config Config
	fs     afero.Fs
	filter *Filter
	out    report.Writer
	log    logger.Logger
	stats  Stats
}

// NewCounter creates a counter using the default allow-list and exclusions.
func NewCounter(config Config, fs afero.Fs, out report.Writer, log logger.Logger) Counter {
	return NewCounterWithFilter(config, fs, DefaultFilter(), out, log)
}

// NewCounterWithFilter creates a counter with an explicit filter.
func NewCounterWithFilter(config Config, fs afero.Fs, filter *Filter, out report.Writer, log logger.Logger) Counter {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBufferSize
	}

	return &counter{
		config: config,
		fs:     fs,
		filter: filter,
		out:    out,
		log:    log,
	}
}

func (c *counter) CountTree(root string) (int64, error) {
	return c.Count(root, Options{PrintHeader: true})
}

func (c *counter) Count(root string, opts Options) (int64, error) {
	c.stats = Stats{StartTime: time.Now()}

	c.log.WithFields(logger.Fields{
		"root":         root,
		"initialTotal": opts.InitialTotal,
		"header":       opts.PrintHeader,
		"bufferSize":   c.config.BufferSize,
	}).Info("Starting line count")

	total, err := c.countDir(root, opts)

	c.stats.EndTime = time.Now()
	c.stats.Duration = c.stats.EndTime.Sub(c.stats.StartTime)
	c.stats.TotalLines = total

	if err != nil {
		c.log.WithFields(logger.Fields{
			"error": err,
			"root":  root,
		}).Error("Line count failed")
		return total, err
	}

	c.log.WithFields(logger.Fields{
		"total":    total,
		"files":    c.stats.FilesCounted,
		"skipped":  c.stats.FilesSkipped,
		"dirs":     c.stats.DirsVisited,
		"bytes":    c.stats.BytesRead,
		"duration": c.stats.Duration,
	}).Info("Line count completed")

	return total, nil
}

func (c *counter) Stats() Stats {
	return c.stats
}

// countDir counts the files directly in dir, then each subdirectory in
// turn, and returns opts.InitialTotal plus everything it counted.
func (c *counter) countDir(dir string, opts Options) (int64, error) {
	total := opts.InitialTotal

	base := opts.OriginalRoot
	if base == "" {
		base = dir
	}

	if opts.PrintHeader {
		if err := c.out.Header(); err != nil {
			return total, err
		}
	}

	c.log.WithFields(logger.Fields{
		"path":  dir,
		"total": total,
	}).Debug("Reading directory")

	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return total, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	c.stats.DirsVisited++

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks, so a link to a file counts as that file.
		info, err := c.fs.Stat(path)
		if err != nil {
			c.log.WithFields(logger.Fields{
				"path":  path,
				"error": err,
			}).Debug("Skipping unresolvable entry")
			continue
		}

		if info.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		if !c.filter.Qualifies(path) {
			c.stats.FilesSkipped++
			c.log.WithFields(logger.Fields{
				"path": path,
			}).Trace("Skipping file")
			continue
		}

		added, err := c.countFile(path)
		if err != nil {
			return total, err
		}
		total += added

		if err := c.out.Row(report.Row{
			Added: added,
			Total: total,
			Path:  displayPath(base, path),
		}); err != nil {
			return total, err
		}
	}

	for _, sub := range subdirs {
		total, err = c.countDir(sub, Options{
			InitialTotal: total,
			OriginalRoot: base,
		})
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

func (c *counter) countFile(path string) (int64, error) {
	file, err := c.fs.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	lines, n, err := CountLines(file, c.config.BufferSize)
	c.stats.BytesRead += n
	if err != nil {
		return 0, fmt.Errorf("failed to count lines in %s: %w", path, err)
	}
	c.stats.FilesCounted++

	c.log.WithFields(logger.Fields{
		"path":  path,
		"lines": lines,
		"bytes": n,
	}).Debug("File counted")

	return lines, nil
}

// displayPath renders path relative to base with a leading "./".
func displayPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return "." + string(os.PathSeparator) + rel
}
