package logging

import (
	"io"
	"os"
	"sync"
)

// swappableWriter delegates to a writer that can be replaced at runtime.
type swappableWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (sw *swappableWriter) Write(p []byte) (int, error) {
	sw.mu.RLock()
	defer sw.mu.RUnlock()
	return sw.w.Write(p)
}

func (sw *swappableWriter) swap(w io.Writer) io.Writer {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	prev := sw.w
	sw.w = w
	return prev
}

var stderrSink = &swappableWriter{w: os.Stderr}

// SetGlobalOutput redirects the stderr sink of every logger. The TUI points
// it at io.Discard while it owns the terminal. The returned function
// restores the previous destination.
func SetGlobalOutput(w io.Writer) (restore func()) {
	prev := stderrSink.swap(w)
	return func() { stderrSink.swap(prev) }
}

// GetGlobalOutput returns the writer loggers use in place of os.Stderr.
func GetGlobalOutput() io.Writer {
	return stderrSink
}
