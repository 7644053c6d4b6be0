package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// searchFrames is the four-frame progress indicator, advanced once per
// generation of the search.
var searchFrames = [...]string{
	"> Searching   ",
	"> Searching.  ",
	"> Searching.. ",
	"> Searching...",
}

// Console styles. lipgloss degrades them to plain text off-terminal.
var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

// statusLine maintains a single transient console line, rewritten in place
// with carriage returns. It only writes when the destination is a terminal,
// so redirected output never contains the animation frames.
type statusLine struct {
	w       io.Writer
	enabled bool
	frame   int
	width   int // widest text shown since the last clear
}

func newStatusLine(w io.Writer) *statusLine {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &statusLine{w: w, enabled: enabled}
}

// Set shows text on the status line and leaves the cursor at column zero so
// the next write overlays it.
func (s *statusLine) Set(text string) {
	if !s.enabled {
		return
	}
	if len(text) > s.width {
		s.width = len(text)
	}
	fmt.Fprint(s.w, statusStyle.Render(text), "\r")
}

// Advance shows the next animation frame.
func (s *statusLine) Advance() {
	s.Set(searchFrames[s.frame%len(searchFrames)])
	s.frame++
}

// Clear blanks the status line.
func (s *statusLine) Clear() {
	if !s.enabled || s.width == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%*s\r", s.width, "")
	s.width = 0
}
