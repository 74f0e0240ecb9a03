package console

import (
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorGreen = "\033[32m"
)

const (
	hiddenSymbol = "  *"
	markedSymbol = "  #"
	mineSymbol   = "  X"
	emptySymbol  = "   "
	gutter       = "     "
)

// BoardView is the read side of the engine the renderer needs.
type BoardView interface {
	Width() int
	Height() int
	CellAt(x, y int) (core.CellView, error)
}

// Renderer draws a board as text with 1-based coordinates.
type Renderer struct {
	Color bool
}

// Render returns the board as a string: a column header, an underline,
// then one labelled row per line followed by a blank line.
func (r Renderer) Render(b BoardView) string {
	width, height := b.Width(), b.Height()

	var sb strings.Builder
	sb.Grow((3*width + 8) * (2*height + 2))

	// Header row
	if r.Color {
		sb.WriteString(ColorGreen)
	}
	sb.WriteString(gutter)
	for x := 0; x < width; x++ {
		writeLabel(&sb, x+1)
	}
	if r.Color {
		sb.WriteString(ColorReset)
	}
	sb.WriteString("\n")

	sb.WriteString(gutter)
	sb.WriteString(strings.Repeat("_", 3*width))
	sb.WriteString("\n")

	// Board rows
	for y := 0; y < height; y++ {
		writeLabel(&sb, y+1)
		sb.WriteString(" |")
		for x := 0; x < width; x++ {
			view, err := b.CellAt(x, y)
			if err != nil {
				sb.WriteString(emptySymbol)
				continue
			}
			r.writeCell(&sb, view)
		}
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// writeLabel right-aligns n in a three character column.
func writeLabel(sb *strings.Builder, n int) {
	if n < 10 {
		sb.WriteString("  ")
	} else {
		sb.WriteString(" ")
	}
	sb.WriteString(strconv.Itoa(n))
}

func (r Renderer) writeCell(sb *strings.Builder, v core.CellView) {
	switch {
	case v.Hidden && v.Marked:
		sb.WriteString(markedSymbol)
	case v.Hidden:
		sb.WriteString(hiddenSymbol)
	case v.Mine:
		if r.Color {
			sb.WriteString(ColorRed)
			sb.WriteString(mineSymbol)
			sb.WriteString(ColorReset)
		} else {
			sb.WriteString(mineSymbol)
		}
	case v.Value == 0:
		sb.WriteString(emptySymbol)
	default:
		sb.WriteString("  ")
		sb.WriteString(strconv.Itoa(v.Value))
	}
}
