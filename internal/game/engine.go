package game

import (
	"fmt"
	"iter"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
	"github.com/mitchelldurbincs/minesweeper/internal/game/rules"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
)

// GameConfig configures a new Engine. Only Difficulty is required.
type GameConfig struct {
	Difficulty core.Difficulty

	// Rng drives random mine placement. Defaults to a time-seeded source.
	Rng mapgen.Source
	// Placer overrides mine placement entirely, e.g. with a fixed layout.
	Placer mapgen.Placer

	Logger   *zerolog.Logger
	EventBus *events.EventBus
	GameID   string
}

// Engine is a single minesweeper game: the board plus its lifecycle.
// It is not safe for concurrent use.
type Engine struct {
	gameID     string
	difficulty core.Difficulty
	board      *core.Board
	totalMines int
	generator  *mapgen.Generator
	winChecker *rules.WinConditionChecker
	placed     bool

	eventBus     *events.EventBus
	stateMachine *states.StateMachine
	gameContext  *states.GameContext
	logger       zerolog.Logger
}

// NewEngine allocates a fully hidden board for the configured difficulty.
// Mines are placed on the first reveal.
func NewEngine(cfg GameConfig) (*Engine, error) {
	preset, err := cfg.Difficulty.Preset()
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	if cfg.GameID == "" {
		cfg.GameID = uuid.NewString()
	}
	baseLogger := log.Logger
	if cfg.Logger != nil {
		baseLogger = *cfg.Logger
	}
	logger := baseLogger.With().
		Str("component", "GameEngine").
		Str("game_id", cfg.GameID).
		Logger()

	if cfg.Placer == nil {
		if cfg.Rng == nil {
			logger.Debug().Msg("No RNG provided, creating new seeded RNG")
			cfg.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		cfg.Placer = mapgen.NewRandomPlacer(cfg.Rng)
	}
	if cfg.EventBus == nil {
		cfg.EventBus = events.NewEventBusWithLogger(baseLogger)
	}

	gameContext := states.NewGameContext(cfg.GameID, cfg.Difficulty.String(), baseLogger)

	e := &Engine{
		gameID:       cfg.GameID,
		difficulty:   cfg.Difficulty,
		board:        core.NewBoard(preset.Width, preset.Height),
		totalMines:   preset.Mines,
		generator:    mapgen.NewGenerator(mapgen.MineConfig{Mines: preset.Mines}, cfg.Placer),
		winChecker:   rules.NewWinConditionChecker(baseLogger, preset.Mines),
		eventBus:     cfg.EventBus,
		stateMachine: states.NewStateMachine(gameContext, cfg.EventBus),
		gameContext:  gameContext,
		logger:       logger,
	}

	e.eventBus.Publish(events.NewGameStartedEvent(
		e.gameID, e.difficulty.String(), preset.Width, preset.Height, preset.Mines,
	))
	e.logger.Info().
		Str("difficulty", e.difficulty.String()).
		Int("width", preset.Width).
		Int("height", preset.Height).
		Int("mines", preset.Mines).
		Msg("Engine created successfully")

	return e, nil
}

// Mark flags (x, y) as a suspected mine. Out-of-range coordinates are ignored.
// Marking is idempotent and there is no unmark.
func (e *Engine) Mark(x, y int) {
	cell := e.board.GetCell(x, y)
	if cell == nil {
		e.logger.Debug().Int("x", x).Int("y", y).Msg("Mark out of bounds ignored")
		return
	}
	if cell.IsMarked() {
		return
	}

	cell.Mark()
	e.gameContext.Moves++
	e.eventBus.Publish(events.NewCellMarkedEvent(e.gameID, core.NewCoordinate(x, y), e.MinesRemaining()))
}

// IsFirstTurn reports whether every cell is still hidden.
func (e *Engine) IsFirstTurn() bool {
	return e.board.All(func(c *core.Cell) bool { return c.IsHidden() })
}

// IsGameRunning reports whether the game is neither lost nor won.
func (e *Engine) IsGameRunning() bool {
	return !e.IsDefeat() && !e.IsNoMovesLeft()
}

// IsDefeat reports whether any revealed cell is a mine.
func (e *Engine) IsDefeat() bool {
	return e.winChecker.IsDefeat(e.board)
}

// IsNoMovesLeft is the win condition: the only hidden cells left are the mines.
func (e *Engine) IsNoMovesLeft() bool {
	return e.winChecker.IsNoMovesLeft(e.board)
}

// MinesRemaining is the total mine count minus marked cells. It goes
// negative when the player over-marks.
func (e *Engine) MinesRemaining() int {
	return e.totalMines - e.board.CountIf(func(c *core.Cell) bool { return c.IsMarked() })
}

// AdjacentMineCount counts mines among the up to 8 neighbours of (x, y).
// It is 0 for out-of-range coordinates.
func (e *Engine) AdjacentMineCount(x, y int) int {
	if !e.board.InBounds(x, y) {
		return 0
	}
	return e.board.AdjacentMines(x, y)
}

// CellAt returns a read-only view of (x, y).
func (e *Engine) CellAt(x, y int) (core.CellView, error) {
	cell := e.board.GetCell(x, y)
	if cell == nil {
		return core.CellView{}, core.WrapCellError("cell", core.NewCoordinate(x, y), core.ErrInvalidCoordinates)
	}
	return cell.View(), nil
}

// Cells yields every cell in row-major order.
func (e *Engine) Cells() iter.Seq2[core.Coordinate, core.CellView] {
	return func(yield func(core.Coordinate, core.CellView) bool) {
		for idx := range e.board.C {
			if !yield(core.FromIndex(idx, e.board.W), e.board.C[idx].View()) {
				return
			}
		}
	}
}

// Public accessors
func (e *Engine) Width() int                  { return e.board.W }
func (e *Engine) Height() int                 { return e.board.H }
func (e *Engine) TotalMines() int             { return e.totalMines }
func (e *Engine) Difficulty() core.Difficulty { return e.difficulty }
func (e *Engine) GameID() string              { return e.gameID }
func (e *Engine) Phase() states.GamePhase     { return e.stateMachine.CurrentPhase() }
func (e *Engine) Moves() int                  { return e.gameContext.Moves }

// Elapsed is the play time since mines were placed.
func (e *Engine) Elapsed() time.Duration { return e.gameContext.GetElapsedTime() }
