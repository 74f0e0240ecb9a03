package console

import (
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Verb is the action a console command requests.
type Verb int

const (
	VerbNone Verb = iota
	VerbShow
	VerbMark
)

func (v Verb) String() string {
	switch v {
	case VerbShow:
		return "show"
	case VerbMark:
		return "mark"
	default:
		return "none"
	}
}

// Command is a parsed player command. X and Y are zero-based.
type Command struct {
	Verb Verb
	X, Y int
}

// Mover is the part of the engine a command acts on.
type Mover interface {
	Reveal(x, y int) []core.Coordinate
	Mark(x, y int)
}

// ParseCommand reads "s x y" or "m x y" with 1-based positive coordinates.
// Anything else yields ok == false and should be ignored.
func ParseCommand(line string) (cmd Command, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Command{}, false
	}

	switch fields[0] {
	case "s":
		cmd.Verb = VerbShow
	case "m":
		cmd.Verb = VerbMark
	default:
		return Command{}, false
	}

	x, err := strconv.Atoi(fields[1])
	if err != nil || x <= 0 {
		return Command{}, false
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil || y <= 0 {
		return Command{}, false
	}

	cmd.X, cmd.Y = x-1, y-1
	return cmd, true
}

// Apply runs the command against m. Coordinates past the board edge are
// left for the engine to ignore.
func (c Command) Apply(m Mover) {
	switch c.Verb {
	case VerbShow:
		m.Reveal(c.X, c.Y)
	case VerbMark:
		m.Mark(c.X, c.Y)
	}
}
