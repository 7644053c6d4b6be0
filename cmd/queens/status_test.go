package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatusLineSilentOffTerminal verifies a non-terminal writer disables
// the line entirely.
func TestStatusLineSilentOffTerminal(t *testing.T) {
	var buf bytes.Buffer

	status := newStatusLine(&buf)
	assert.False(t, status.enabled)

	status.Set("> Generating initial population")
	status.Advance()
	status.Clear()

	assert.Zero(t, buf.Len())
}

// TestStatusLineOverwritesInPlace verifies the carriage-return mechanics:
// text is shown with the cursor parked at column zero, and clearing blanks
// the widest text written so far.
func TestStatusLineOverwritesInPlace(t *testing.T) {
	var buf bytes.Buffer
	status := &statusLine{w: &buf, enabled: true}

	const text = "> Generating initial population"
	status.Set(text)

	out := buf.String()
	assert.Contains(t, out, text)
	assert.True(t, strings.HasSuffix(out, "\r"), "cursor must return to column zero")

	buf.Reset()
	status.Clear()

	cleared := buf.String()
	assert.Contains(t, cleared, strings.Repeat(" ", len(text)))
	assert.True(t, strings.HasPrefix(cleared, "\r"))
	assert.True(t, strings.HasSuffix(cleared, "\r"))

	// A second clear with nothing shown writes nothing.
	buf.Reset()
	status.Clear()
	assert.Zero(t, buf.Len())
}

// TestStatusLineFrames verifies the animation cycles through the four
// frames and wraps around.
func TestStatusLineFrames(t *testing.T) {
	var buf bytes.Buffer
	status := &statusLine{w: &buf, enabled: true}

	for i := 0; i < 5; i++ {
		status.Advance()
	}
	out := buf.String()

	require.Equal(t, 4, len(searchFrames))
	assert.Equal(t, 2, strings.Count(out, "> Searching   "), "first frame shows again on wrap-around")
	assert.Equal(t, 1, strings.Count(out, "> Searching.  "))
	assert.Equal(t, 1, strings.Count(out, "> Searching.. "))
	assert.Equal(t, 1, strings.Count(out, "> Searching..."))
}
