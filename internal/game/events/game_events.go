package events

import (
	"time"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeMinesPlaced     = "mines.placed"
	TypeCellsRevealed   = "cells.revealed"
	TypeCellMarked      = "cell.marked"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published when a new board is created
type GameStartedEvent struct {
	BaseEvent
	Difficulty string
	Width      int
	Height     int
	Mines      int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID, difficulty string, width, height, mines int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:  newBaseEvent(TypeGameStarted, gameID),
		Difficulty: difficulty,
		Width:      width,
		Height:     height,
		Mines:      mines,
	}
}

// MinesPlacedEvent is published once, when the first reveal triggers placement
type MinesPlacedEvent struct {
	BaseEvent
	Excluded core.Coordinate
	Mines    int
}

// NewMinesPlacedEvent creates a new MinesPlacedEvent
func NewMinesPlacedEvent(gameID string, excluded core.Coordinate, mines int) *MinesPlacedEvent {
	return &MinesPlacedEvent{
		BaseEvent: newBaseEvent(TypeMinesPlaced, gameID),
		Excluded:  excluded,
		Mines:     mines,
	}
}

// CellsRevealedEvent is published after a reveal that uncovered at least one cell
type CellsRevealedEvent struct {
	BaseEvent
	Origin   core.Coordinate
	Revealed []core.Coordinate
	HitMine  bool
}

// NewCellsRevealedEvent creates a new CellsRevealedEvent
func NewCellsRevealedEvent(gameID string, origin core.Coordinate, revealed []core.Coordinate, hitMine bool) *CellsRevealedEvent {
	return &CellsRevealedEvent{
		BaseEvent: newBaseEvent(TypeCellsRevealed, gameID),
		Origin:    origin,
		Revealed:  revealed,
		HitMine:   hitMine,
	}
}

// CellMarkedEvent is published when a cell is first marked as a suspected mine
type CellMarkedEvent struct {
	BaseEvent
	Cell           core.Coordinate
	MinesRemaining int
}

// NewCellMarkedEvent creates a new CellMarkedEvent
func NewCellMarkedEvent(gameID string, cell core.Coordinate, minesRemaining int) *CellMarkedEvent {
	return &CellMarkedEvent{
		BaseEvent:      newBaseEvent(TypeCellMarked, gameID),
		Cell:           cell,
		MinesRemaining: minesRemaining,
	}
}

// GameEndedEvent is published when the board reaches Won or Lost
type GameEndedEvent struct {
	BaseEvent
	Won      bool
	Duration time.Duration
	Moves    int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, won bool, duration time.Duration, moves int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBaseEvent(TypeGameEnded, gameID),
		Won:       won,
		Duration:  duration,
		Moves:     moves,
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBaseEvent(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
