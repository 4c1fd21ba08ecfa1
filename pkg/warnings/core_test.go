package warnings

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWarnf tests the behavior of Warnf.
//
// It verifies:
//   - Warnings go to the configured writer
//   - The restore function reinstates the previous writer
func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)

	Warnf("Warning: %s\n", "empty group")
	assert.Equal(t, "Warning: empty group\n", buf.String())

	restore()
	assert.NotSame(t, &buf, WarningWriter())
}

// TestSetWarningWriterNil tests nil handling in SetWarningWriter.
//
// It verifies:
//   - A nil writer falls back to stderr instead of panicking
func TestSetWarningWriterNil(t *testing.T) {
	restore := SetWarningWriter(nil)
	defer restore()

	assert.NotNil(t, WarningWriter())
	Warnf("no panic\n")
}

// TestCollector tests the behavior of Collector.
//
// It verifies:
//   - Written warnings accumulate and read back via String
//   - Flush forwards buffered content and resets the buffer
func TestCollector(t *testing.T) {
	collector := &Collector{}
	restore := SetWarningWriter(collector)
	defer restore()

	Warnf("first\n")
	Warnf("second\n")
	assert.Equal(t, "first\nsecond\n", collector.String())

	var sink bytes.Buffer
	collector.Flush(&sink)
	assert.Equal(t, "first\nsecond\n", sink.String())
	assert.Empty(t, collector.String())

	// Flushing an empty collector writes nothing.
	sink.Reset()
	collector.Flush(&sink)
	assert.Empty(t, sink.String())
}
