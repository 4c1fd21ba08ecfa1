// Package warnings provides the transport for non-fatal diagnostics.
// The grouping engine reports misconfigured groups through this package so
// commands can redirect or capture the output without changing engine logic.
package warnings

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes formatted warning messages to the configured warning writer.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, format, args...)
}

// WarningWriter returns the currently configured warning writer.
//
// Returns:
//   - io.Writer: The currently configured writer for warning messages
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
//
// Example:
//
//	collector := &warnings.Collector{}
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}

// Collector is an io.Writer that buffers warnings for later inspection.
//
// Commands install a Collector while producing structured output so warning
// text does not interleave with JSON or YAML on stdout; tests use it to
// assert on diagnostic content.
type Collector struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer by appending to the internal buffer.
//
// Parameters:
//   - p: Bytes to buffer
//
// Returns:
//   - int: Number of bytes written (always len(p))
//   - error: Always nil
func (c *Collector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns all collected warning text.
//
// Returns:
//   - string: Buffered warning output, empty if nothing was warned
func (c *Collector) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Flush writes the collected warnings to w and resets the buffer.
//
// Parameters:
//   - w: Destination writer, typically os.Stderr
func (c *Collector) Flush(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buf.Len() > 0 {
		_, _ = w.Write(c.buf.Bytes())
		c.buf.Reset()
	}
}
