package logging

import (
	"bytes"
	"io"
	"sync"
)

// PrefixWriter prepends a fixed prefix to every complete line written
// through it. Partial lines are held back until their newline arrives.
type PrefixWriter struct {
	mu      sync.Mutex
	prefix  []byte
	writer  io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	n := len(p)
	pw.pending.Write(p)

	for {
		idx := bytes.IndexByte(pw.pending.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := pw.pending.Next(idx + 1)
		if _, err := pw.writer.Write(append(append([]byte{}, pw.prefix...), line...)); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// Flush writes out any held-back partial line.
func (pw *PrefixWriter) Flush() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.pending.Len() == 0 {
		return nil
	}
	line := pw.pending.Next(pw.pending.Len())
	_, err := pw.writer.Write(append(append([]byte{}, pw.prefix...), line...))
	return err
}
