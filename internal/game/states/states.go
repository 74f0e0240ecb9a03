package states

import (
	"fmt"
	"time"
)

// UninitializedState is a fresh board waiting for its first reveal
type UninitializedState struct{}

func NewUninitializedState() State {
	return &UninitializedState{}
}

func (s *UninitializedState) Phase() GamePhase {
	return PhaseUninitialized
}

func (s *UninitializedState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Board created, waiting for first reveal")
	return nil
}

func (s *UninitializedState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Leaving uninitialized state")
	return nil
}

func (s *UninitializedState) Validate(ctx *GameContext) error {
	return nil
}

// PlacedState represents active play after mine placement
type PlacedState struct{}

func NewPlacedState() State {
	return &PlacedState{}
}

func (s *PlacedState) Phase() GamePhase {
	return PhasePlaced
}

func (s *PlacedState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Debug().
		Time("start_time", ctx.StartTime).
		Msg("Mines placed, game running")
	return nil
}

func (s *PlacedState) Exit(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting placed state")
	return nil
}

func (s *PlacedState) Validate(ctx *GameContext) error {
	return nil
}

// WonState represents a cleared board
type WonState struct{}

func NewWonState() State {
	return &WonState{}
}

func (s *WonState) Phase() GamePhase {
	return PhaseWon
}

func (s *WonState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Dur("duration", ctx.GetElapsedTime()).
		Int("moves", ctx.Moves).
		Msg("Board cleared")
	return nil
}

func (s *WonState) Exit(ctx *GameContext) error {
	return fmt.Errorf("cannot leave terminal phase %s", PhaseWon)
}

func (s *WonState) Validate(ctx *GameContext) error {
	return validateStarted(ctx)
}

// LostState represents a board where a mine was revealed
type LostState struct{}

func NewLostState() State {
	return &LostState{}
}

func (s *LostState) Phase() GamePhase {
	return PhaseLost
}

func (s *LostState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Dur("duration", ctx.GetElapsedTime()).
		Int("moves", ctx.Moves).
		Msg("Mine revealed, game lost")
	return nil
}

func (s *LostState) Exit(ctx *GameContext) error {
	return fmt.Errorf("cannot leave terminal phase %s", PhaseLost)
}

func (s *LostState) Validate(ctx *GameContext) error {
	return validateStarted(ctx)
}

func validateStarted(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		return fmt.Errorf("game %s has no mines placed", ctx.GameID)
	}
	return nil
}
