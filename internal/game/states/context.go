package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Difficulty is the preset name the board was built from
	Difficulty string

	// StartTime is when mines were placed (PhasePlaced entered)
	StartTime time.Time

	// EndTime is when a terminal phase was entered
	EndTime time.Time

	// Moves counts reveal and mark commands that changed the board
	Moves int
}

// NewGameContext creates a new game context
func NewGameContext(gameID, difficulty string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:     gameID,
		Difficulty: difficulty,
		Logger:     logger.With().Str("game_id", gameID).Logger(),
	}
}

// GetElapsedTime returns the play time so far, or the final play time once the game ended
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}
