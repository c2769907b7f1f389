// Package utils holds small helpers shared by the binary.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers log output while the TUI owns the terminal so it can
// be written out after the program exits.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p. It never fails.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Flush writes the buffered output to w one line per Write, so writers that
// expect a single event per call (zerolog.ConsoleWriter) see each entry, and
// resets the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer d.buf.Reset()

	for _, line := range bytes.SplitAfter(d.buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
