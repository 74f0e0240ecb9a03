package core

import (
	"fmt"
	"strings"
)

// Difficulty selects one of the fixed board presets.
type Difficulty int

const (
	Beginner     Difficulty = 1
	Intermediate Difficulty = 2
)

// Preset holds the board dimensions and mine count of a difficulty.
type Preset struct {
	Width  int
	Height int
	Mines  int
}

var presets = map[Difficulty]Preset{
	Beginner:     {Width: 9, Height: 9, Mines: 10},
	Intermediate: {Width: 16, Height: 16, Mines: 40},
}

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// Preset returns the board parameters for d.
func (d Difficulty) Preset() (Preset, error) {
	p, ok := presets[d]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return p, nil
}

// ParseDifficulty accepts a preset name or its menu number ("1", "2").
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "beginner":
		return Beginner, nil
	case "2", "intermediate":
		return Intermediate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
}
