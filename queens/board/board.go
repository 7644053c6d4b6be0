// Package board renders queens board states as box-drawing diagrams for
// console display.
package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonschenk/n-queens/queens"
)

// Cell glyphs. Each cell is three columns wide plus its left wall; the
// queen marker is U+265B.
const (
	occupiedCell = "┃ ♛ "
	emptyCell    = "┃   "
)

// Horizontal borders, built once. Every border spans the full row of
// BoardSize cells.
var (
	topBorder    = "┏" + strings.Repeat("━━━┳", queens.BoardSize-1) + "━━━┓"
	midBorder    = "┣" + strings.Repeat("━━━╋", queens.BoardSize-1) + "━━━┫"
	bottomBorder = "┗" + strings.Repeat("━━━┻", queens.BoardSize-1) + "━━━┛"
)

// Render returns the board diagram for a state, rank 8 at the top and file
// a on the left, without a trailing newline.
func Render(s queens.State) string {
	ranks := s.Ranks()

	var b strings.Builder
	b.Grow(2048)

	b.WriteString(topBorder)
	for rank := queens.BoardSize; rank >= 1; rank-- {
		b.WriteByte('\n')
		for file := 0; file < queens.BoardSize; file++ {
			if ranks[file] == rank {
				b.WriteString(occupiedCell)
			} else {
				b.WriteString(emptyCell)
			}
		}
		b.WriteString("┃")
		if rank > 1 {
			b.WriteByte('\n')
			b.WriteString(midBorder)
		}
	}
	b.WriteByte('\n')
	b.WriteString(bottomBorder)
	return b.String()
}

// Fprint writes the rendered board for a state to w, followed by a newline.
func Fprint(w io.Writer, s queens.State) error {
	_, err := fmt.Fprintln(w, Render(s))
	return err
}
