package states

import "fmt"

// GamePhase represents the lifecycle phase of a board
type GamePhase int

const (
	// PhaseUninitialized - board created, every cell hidden, no mines yet
	PhaseUninitialized GamePhase = iota

	// PhasePlaced - mines placed and numbers computed on the first reveal
	PhasePlaced

	// PhaseWon - every non-mine cell revealed
	PhaseWon

	// PhaseLost - a mine was revealed
	PhaseLost
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhasePlaced:
		return "Placed"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseUninitialized:
		return []GamePhase{PhasePlaced}
	case PhasePlaced:
		return []GamePhase{PhaseWon, PhaseLost}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	switch s {
	case "Uninitialized":
		return PhaseUninitialized, nil
	case "Placed":
		return PhasePlaced, nil
	case "Won":
		return PhaseWon, nil
	case "Lost":
		return PhaseLost, nil
	default:
		return PhaseUninitialized, fmt.Errorf("unknown phase %q", s)
	}
}
