package core

import "fmt"

// Content describes what a cell holds once mines have been placed.
type Content int

const (
	ContentEmpty    Content = iota // no adjacent mines
	ContentNumbered                // 1..8 adjacent mines
	ContentMine
)

// MaxValue is the largest adjacency count a cell can carry.
const MaxValue = 8

func (c Content) String() string {
	switch c {
	case ContentEmpty:
		return "Empty"
	case ContentNumbered:
		return "Numbered"
	case ContentMine:
		return "Mine"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Cell is a single square of the minefield.
// A fresh cell is hidden, unmarked and empty.
type Cell struct {
	content Content
	value   int
	hidden  bool
	marked  bool
}

// NewCell returns a hidden, unmarked, empty cell.
func NewCell() Cell {
	return Cell{content: ContentEmpty, hidden: true}
}

func (c *Cell) SetMine() {
	c.content = ContentMine
	c.value = 0
}

// SetValue stores the number of adjacent mines. n outside 1..MaxValue is a
// programming error.
func (c *Cell) SetValue(n int) {
	if n < 1 || n > MaxValue {
		panic(fmt.Sprintf("core: cell value %d out of range 1..%d", n, MaxValue))
	}
	c.content = ContentNumbered
	c.value = n
}

func (c *Cell) SetEmpty() {
	c.content = ContentEmpty
	c.value = 0
}

// Mark flags the cell as a suspected mine. Marking is not a toggle.
func (c *Cell) Mark() { c.marked = true }

// Show reveals the cell and clears its mark. Revealing is one-way.
func (c *Cell) Show() {
	c.marked = false
	c.hidden = false
}

func (c *Cell) Content() Content { return c.content }
func (c *Cell) IsEmpty() bool    { return c.content == ContentEmpty }
func (c *Cell) IsMine() bool     { return c.content == ContentMine }
func (c *Cell) IsNumbered() bool { return c.content == ContentNumbered }
func (c *Cell) IsMarked() bool   { return c.marked }
func (c *Cell) IsHidden() bool   { return c.hidden }

// Value returns the adjacency count of a numbered cell and panics for any
// other content.
func (c *Cell) Value() int {
	if c.content != ContentNumbered {
		panic(fmt.Sprintf("core: Value called on %s cell", c.content))
	}
	return c.value
}

// CellView is a read-only snapshot of a cell, sufficient for rendering.
type CellView struct {
	Hidden bool
	Marked bool
	Mine   bool
	Value  int // 0 for empty and mine cells
}

// View returns a snapshot of the cell.
func (c *Cell) View() CellView {
	v := CellView{Hidden: c.hidden, Marked: c.marked, Mine: c.IsMine()}
	if c.IsNumbered() {
		v.Value = c.value
	}
	return v
}
