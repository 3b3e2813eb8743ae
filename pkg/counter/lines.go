package counter

import (
	"fmt"
	"io"
)

// lineCounter counts lines the way a text-mode reader with universal
// newlines splits them: "\n", "\r\n" and a lone "\r" each end a line, and
// trailing bytes without a terminator form one more line. Every byte is a
// single character, so no input can fail to decode.
type lineCounter struct {
	lines   int64
	bytes   int64
	pending bool // bytes seen since the last terminator
	afterCR bool // last byte was '\r'; a following '\n' belongs to it
}

func (c *lineCounter) Write(p []byte) (int, error) {
	for _, b := range p {
		switch b {
		case '\r':
			c.lines++
			c.afterCR = true
			c.pending = false
		case '\n':
			if !c.afterCR {
				c.lines++
			}
			c.afterCR = false
			c.pending = false
		default:
			c.afterCR = false
			c.pending = true
		}
	}
	c.bytes += int64(len(p))
	return len(p), nil
}

func (c *lineCounter) total() int64 {
	if c.pending {
		return c.lines + 1
	}
	return c.lines
}

// CountLines reads r to the end through a buffer of bufferSize bytes and
// returns the number of lines together with the number of bytes read.
func CountLines(r io.Reader, bufferSize int) (lines int64, bytesRead int64, err error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	var c lineCounter
	if _, err := io.CopyBuffer(&c, onlyReader{r}, make([]byte, bufferSize)); err != nil {
		return 0, c.bytes, fmt.Errorf("failed to read content: %w", err)
	}

	return c.total(), c.bytes, nil
}

// onlyReader hides WriterTo so io.CopyBuffer honours the given buffer.
type onlyReader struct {
	io.Reader
}
