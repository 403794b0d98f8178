package passx

import (
	"bytes"
	"io"
	"sync"
)

// UniqueWriter wraps an io.Writer with transparent line-level
// deduplication. Seeding it with the lines of an existing wordlist
// makes re-runs append only candidates not written before.
type UniqueWriter struct {
	writer io.Writer
	seen   map[string]struct{}
	buffer []byte
	count  int
	mu     sync.Mutex
	closed bool
}

// NewUniqueWriter creates a UniqueWriter, optionally pre-populated with
// lines to skip
func NewUniqueWriter(w io.Writer, seed ...string) *UniqueWriter {
	seen := make(map[string]struct{}, len(seed))
	for _, item := range seed {
		seen[item] = struct{}{}
	}
	return &UniqueWriter{
		writer: w,
		seen:   seen,
	}
}

// Write implements the io.Writer interface. Input is buffered until a
// complete line is available, each unseen line is written through once.
func (uw *UniqueWriter) Write(p []byte) (int, error) {
	uw.mu.Lock()
	defer uw.mu.Unlock()
	if uw.closed {
		return 0, io.ErrClosedPipe
	}
	uw.buffer = append(uw.buffer, p...)
	for {
		idx := bytes.IndexByte(uw.buffer, '\n')
		if idx == -1 {
			break
		}
		line := string(uw.buffer[:idx])
		uw.buffer = uw.buffer[idx+1:]
		if err := uw.writeLine(line); err != nil {
			return 0, err
		}
	}
	// report the full length to satisfy the io.Writer contract even
	// when duplicate lines were swallowed
	return len(p), nil
}

func (uw *UniqueWriter) writeLine(line string) error {
	if line == "" {
		return nil
	}
	if _, ok := uw.seen[line]; ok {
		return nil
	}
	uw.seen[line] = struct{}{}
	if _, err := uw.writer.Write([]byte(line + "\n")); err != nil {
		return err
	}
	uw.count++
	return nil
}

// Close flushes a trailing unterminated line and marks the writer closed
func (uw *UniqueWriter) Close() error {
	uw.mu.Lock()
	defer uw.mu.Unlock()
	if uw.closed {
		return nil
	}
	uw.closed = true
	if len(uw.buffer) > 0 {
		line := string(uw.buffer)
		uw.buffer = nil
		return uw.writeLine(line)
	}
	return nil
}

// Count returns the number of unique lines written
func (uw *UniqueWriter) Count() int {
	uw.mu.Lock()
	defer uw.mu.Unlock()
	return uw.count
}
