package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Outcome is the result of a game-over check.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// WinConditionChecker decides defeat and victory from the board alone.
type WinConditionChecker struct {
	logger     zerolog.Logger
	totalMines int
}

// NewWinConditionChecker creates a checker for a board holding totalMines mines.
func NewWinConditionChecker(logger zerolog.Logger, totalMines int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:     logger.With().Str("component", "WinConditionChecker").Logger(),
		totalMines: totalMines,
	}
}

// IsDefeat reports whether any revealed cell is a mine.
func (wc *WinConditionChecker) IsDefeat(b *core.Board) bool {
	return b.Any(func(c *core.Cell) bool { return !c.IsHidden() && c.IsMine() })
}

// IsNoMovesLeft reports whether the only hidden cells left are the mines.
// Before placement the board has no mines but the hidden count still
// exceeds totalMines, so a fresh board never counts as won.
func (wc *WinConditionChecker) IsNoMovesLeft(b *core.Board) bool {
	return b.CountIf(func(c *core.Cell) bool { return c.IsHidden() }) == wc.totalMines
}

// CheckGameOver classifies the board. Defeat takes precedence over victory.
func (wc *WinConditionChecker) CheckGameOver(b *core.Board) Outcome {
	outcome := OutcomeRunning
	switch {
	case wc.IsDefeat(b):
		outcome = OutcomeLost
	case wc.IsNoMovesLeft(b):
		outcome = OutcomeWon
	}

	wc.logger.Debug().Str("outcome", outcome.String()).Msg("Game over check complete")
	return outcome
}
