/*
Package report renders the line count table. Each counted file becomes one
fixed-width row holding the lines it added, the running total and its path
relative to the scanned root:

	     ADDED |     TOTAL | FILE
	-----------|-----------|--------------------
	         3 |         3 | ./a.c
	         5 |         8 | ./b.txt
	         2 |        10 | ./sub/c.py

Rows are written as they are produced. The writer keeps nothing in memory.
*/
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	numberWidth = 10
	pathWidth   = 20
)

// Row is a single counted file.
type Row struct {
	Added int64
	Total int64
	Path  string
}

// Config holds report writer configuration
type Config struct {
	// NoColor disables styling even when the output is a terminal
	NoColor bool
}

// Writer emits the report header and rows.
type Writer interface {
	// Header writes the column titles followed by the divider line
	Header() error

	// Row writes one file row
	Row(Row) error
}

type writer struct {
	out        io.Writer
	withColors bool
	header     *color.Color
	divider    *color.Color
}

// NewWriter creates a report writer on out. Styling is applied only when out
// is a terminal and colors are not disabled.
func NewWriter(config Config, out io.Writer) Writer {
	w := &writer{
		out:        out,
		withColors: !config.NoColor && isTerminal(out),
		header:     color.New(color.Bold),
		divider:    color.New(color.Faint),
	}
	if w.withColors {
		// color disables itself for non-tty stdout; the decision was made above.
		w.header.EnableColor()
		w.divider.EnableColor()
	}

	return w
}

// HeaderLine returns the unstyled column titles.
func HeaderLine() string {
	return fmt.Sprintf("%*s |%*s | %-*s", numberWidth, "ADDED", numberWidth, "TOTAL", pathWidth, "FILE")
}

// DividerLine returns the unstyled divider printed under the header.
func DividerLine() string {
	return strings.Repeat("-", numberWidth+1) + "|" +
		strings.Repeat("-", numberWidth+1) + "|" +
		strings.Repeat("-", pathWidth)
}

// FormatRow returns the unstyled text of a single row.
func FormatRow(r Row) string {
	return fmt.Sprintf("%*d |%*d | %-*s", numberWidth, r.Added, numberWidth, r.Total, pathWidth, r.Path)
}

func (w *writer) Header() error {
	header, divider := HeaderLine(), DividerLine()
	if w.withColors {
		header = w.header.Sprint(header)
		divider = w.divider.Sprint(divider)
	}

	if _, err := fmt.Fprintln(w.out, header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	if _, err := fmt.Fprintln(w.out, divider); err != nil {
		return fmt.Errorf("failed to write report divider: %w", err)
	}

	return nil
}

func (w *writer) Row(r Row) error {
	if _, err := fmt.Fprintln(w.out, FormatRow(r)); err != nil {
		return fmt.Errorf("failed to write report row for %s: %w", r.Path, err)
	}

	return nil
}

func isTerminal(out io.Writer) bool {
	if f, ok := out.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
