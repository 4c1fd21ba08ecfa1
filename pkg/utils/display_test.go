package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDisplayWidth tests unicode-aware width calculation.
func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 6, DisplayWidth("lodash"))
	assert.Equal(t, 0, DisplayWidth(""))
	assert.Equal(t, 4, DisplayWidth("你好")) // CJK chars are double width
}

// TestToWidth tests the behavior of ToWidth.
//
// It verifies:
//   - Short strings are padded with spaces to the target width
//   - Strings at or above the target width are returned unchanged
//   - Non-positive widths are a no-op
func TestToWidth(t *testing.T) {
	assert.Equal(t, "ab   ", ToWidth("ab", 5))
	assert.Equal(t, "abcdef", ToWidth("abcdef", 5))
	assert.Equal(t, "ab", ToWidth("ab", 0))
	assert.Equal(t, "ab", ToWidth("ab", -1))
}

// TestMax tests the behavior of Max.
func TestMax(t *testing.T) {
	assert.Equal(t, 9, Max(3, 9, 1))
	assert.Equal(t, -1, Max(-5, -1))
	assert.Equal(t, 0, Max())
}
