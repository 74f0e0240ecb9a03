package game

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
	"github.com/mitchelldurbincs/minesweeper/internal/testutil"
)

func newFixedEngine(t *testing.T, mines []core.Coordinate) *Engine {
	t.Helper()
	e, err := NewEngine(GameConfig{
		Difficulty: core.Beginner,
		Placer:     mapgen.NewFixedPlacer(mines...),
		Logger:     testutil.NopLogger(),
		GameID:     "fixed-game",
	})
	require.NoError(t, err)
	return e
}

func countCells(e *Engine, pred func(core.CellView) bool) int {
	n := 0
	for _, v := range e.Cells() {
		if pred(v) {
			n++
		}
	}
	return n
}

func isHidden(v core.CellView) bool { return v.Hidden }
func isMine(v core.CellView) bool   { return v.Mine }

func TestNewEngine(t *testing.T) {
	tests := []struct {
		difficulty          core.Difficulty
		width, height, mine int
	}{
		{core.Beginner, 9, 9, 10},
		{core.Intermediate, 16, 16, 40},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			e, err := NewEngine(GameConfig{
				Difficulty: tt.difficulty,
				Rng:        testutil.NewTestRNG(12345),
				Logger:     testutil.NopLogger(),
			})
			require.NoError(t, err)

			assert.Equal(t, tt.width, e.Width())
			assert.Equal(t, tt.height, e.Height())
			assert.Equal(t, tt.mine, e.TotalMines())
			assert.Equal(t, tt.mine, e.MinesRemaining())
			assert.NotEmpty(t, e.GameID(), "game id defaults to a uuid")

			assert.True(t, e.IsFirstTurn())
			assert.True(t, e.IsGameRunning())
			assert.False(t, e.IsDefeat())
			assert.False(t, e.IsNoMovesLeft())
			assert.Equal(t, states.PhaseUninitialized, e.Phase())

			assert.Equal(t, tt.width*tt.height, countCells(e, isHidden))
			assert.Zero(t, countCells(e, isMine), "mines are placed lazily")
		})
	}

	t.Run("invalid difficulty", func(t *testing.T) {
		e, err := NewEngine(GameConfig{Difficulty: core.Difficulty(7), Logger: testutil.NopLogger()})
		assert.Nil(t, e)
		assert.True(t, errors.Is(err, core.ErrInvalidDifficulty))
	})
}

func TestEngine_FirstRevealIsSafe(t *testing.T) {
	for _, difficulty := range []core.Difficulty{core.Beginner, core.Intermediate} {
		for seed := int64(1); seed <= 50; seed++ {
			rng := testutil.NewTestRNG(seed)
			e, err := NewEngine(GameConfig{
				Difficulty: difficulty,
				Rng:        rng,
				Logger:     testutil.NopLogger(),
			})
			require.NoError(t, err)

			x, y := rng.Intn(e.Width()), rng.Intn(e.Height())
			revealed := e.Reveal(x, y)
			require.NotEmpty(t, revealed)

			view, err := e.CellAt(x, y)
			require.NoError(t, err)
			assert.False(t, view.Mine, "seed %d: first reveal at (%d,%d) hit a mine", seed, x, y)
			assert.False(t, view.Hidden)
			assert.False(t, e.IsDefeat())
			assert.Equal(t, e.TotalMines(), countCells(e, isMine), "seed %d", seed)
			assert.Equal(t, states.PhasePlaced, e.Phase())
		}
	}
}

func TestEngine_AdjacencyCounts(t *testing.T) {
	layout := testutil.IslandLayout()
	e := newFixedEngine(t, layout)

	assert.Zero(t, e.AdjacentMineCount(3, 3), "no mines before the first reveal")

	e.Reveal(1, 1)

	assert.Equal(t, 0, e.AdjacentMineCount(0, 0))
	assert.Equal(t, 2, e.AdjacentMineCount(3, 0))
	assert.Equal(t, 5, e.AdjacentMineCount(3, 3))
	assert.Equal(t, 1, e.AdjacentMineCount(7, 7))

	mines := make(map[core.Coordinate]bool, len(layout))
	for _, m := range layout {
		mines[m] = true
	}
	for c, v := range e.Cells() {
		if mines[c] {
			assert.True(t, v.Mine, "%s should be a mine", c)
			continue
		}
		want := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if (dx != 0 || dy != 0) && mines[core.NewCoordinate(c.X+dx, c.Y+dy)] {
					want++
				}
			}
		}
		assert.False(t, v.Mine, "%s", c)
		assert.Equal(t, want, v.Value, "value at %s", c)
		assert.Equal(t, want, e.AdjacentMineCount(c.X, c.Y), "count at %s", c)
	}
}

func TestEngine_FloodFill(t *testing.T) {
	t.Run("empty island and its border", func(t *testing.T) {
		e := newFixedEngine(t, testutil.IslandLayout())

		revealed := e.Reveal(1, 1)

		assert.ElementsMatch(t, testutil.IslandPocket(), revealed)
		assert.Equal(t, 81-16, countCells(e, isHidden))
		for _, c := range testutil.IslandPocket() {
			v, err := e.CellAt(c.X, c.Y)
			require.NoError(t, err)
			assert.False(t, v.Hidden, "%s should be revealed", c)
		}
		v, _ := e.CellAt(4, 0)
		assert.True(t, v.Hidden, "mines on the wall stay hidden")
		v, _ = e.CellAt(5, 0)
		assert.True(t, v.Hidden, "fill does not cross numbered cells")

		assert.Nil(t, e.Reveal(1, 1), "revealing again uncovers nothing")
		assert.Nil(t, e.Reveal(3, 3))
		assert.True(t, e.IsGameRunning())
	})

	t.Run("stops at numbered cells", func(t *testing.T) {
		e := newFixedEngine(t, testutil.BarrierLayout())

		revealed := e.Reveal(0, 0)

		var want []core.Coordinate
		for y := 0; y < 9; y++ {
			for x := 0; x <= 3; x++ {
				want = append(want, core.NewCoordinate(x, y))
			}
		}
		assert.ElementsMatch(t, want, revealed)

		for _, c := range []core.Coordinate{{X: 4, Y: 8}, {X: 5, Y: 8}, {X: 6, Y: 8}, {X: 6, Y: 4}} {
			v, err := e.CellAt(c.X, c.Y)
			require.NoError(t, err)
			assert.True(t, v.Hidden, "%s lies past the numbered boundary", c)
		}
		assert.True(t, e.IsGameRunning())
	})

	t.Run("numbered cell reveals only itself", func(t *testing.T) {
		e := newFixedEngine(t, testutil.IslandLayout())

		revealed := e.Reveal(5, 0)

		assert.Equal(t, []core.Coordinate{core.NewCoordinate(5, 0)}, revealed)
		assert.Equal(t, 80, countCells(e, isHidden))
	})
}

func TestEngine_Win(t *testing.T) {
	e := newFixedEngine(t, testutil.CornerLayout())

	revealed := e.Reveal(0, 0)

	assert.Len(t, revealed, 71)
	assert.True(t, e.IsNoMovesLeft())
	assert.False(t, e.IsDefeat())
	assert.False(t, e.IsGameRunning())
	assert.Equal(t, states.PhaseWon, e.Phase())
}

func TestEngine_Loss(t *testing.T) {
	e := newFixedEngine(t, testutil.IslandLayout())
	e.Reveal(1, 1)

	revealed := e.Reveal(4, 0)

	assert.Equal(t, []core.Coordinate{core.NewCoordinate(4, 0)}, revealed)
	assert.True(t, e.IsDefeat())
	assert.False(t, e.IsGameRunning())
	assert.Equal(t, states.PhaseLost, e.Phase())

	e.Reveal(8, 8)
	assert.Equal(t, states.PhaseLost, e.Phase(), "the first outcome sticks")
}

func TestEngine_Mark(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		e := newFixedEngine(t, testutil.IslandLayout())

		e.Mark(0, 0)
		e.Mark(0, 0)

		assert.Equal(t, 9, e.MinesRemaining())
		v, err := e.CellAt(0, 0)
		require.NoError(t, err)
		assert.True(t, v.Marked)
		assert.True(t, v.Hidden)
		assert.True(t, e.IsFirstTurn(), "marking does not reveal")
		assert.Equal(t, 1, e.Moves())
	})

	t.Run("reveal clears marks", func(t *testing.T) {
		e := newFixedEngine(t, testutil.IslandLayout())
		e.Mark(1, 1)
		e.Mark(0, 0)
		require.Equal(t, 8, e.MinesRemaining())

		e.Reveal(1, 1)

		for _, c := range []core.Coordinate{{X: 1, Y: 1}, {X: 0, Y: 0}} {
			v, _ := e.CellAt(c.X, c.Y)
			assert.False(t, v.Marked, "%s", c)
			assert.False(t, v.Hidden, "%s", c)
		}
		assert.Equal(t, 10, e.MinesRemaining())
	})

	t.Run("over-marking goes negative", func(t *testing.T) {
		e := newFixedEngine(t, testutil.IslandLayout())
		for x := 0; x < 9; x++ {
			e.Mark(x, 6)
			e.Mark(x, 7)
		}
		assert.Equal(t, 10-18, e.MinesRemaining())
	})
}

func TestEngine_OutOfBounds(t *testing.T) {
	e := newFixedEngine(t, testutil.IslandLayout())

	for _, c := range []core.Coordinate{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 9, Y: 0}, {X: 0, Y: 9}} {
		assert.Nil(t, e.Reveal(c.X, c.Y))
		e.Mark(c.X, c.Y)
		assert.Zero(t, e.AdjacentMineCount(c.X, c.Y))

		_, err := e.CellAt(c.X, c.Y)
		assert.True(t, errors.Is(err, core.ErrInvalidCoordinates), "%s", c)
	}

	assert.True(t, e.IsFirstTurn())
	assert.Equal(t, 10, e.MinesRemaining())
	assert.Equal(t, states.PhaseUninitialized, e.Phase(), "out-of-range reveals do not place mines")
	assert.Zero(t, e.Moves())
}

func TestEngine_Cells(t *testing.T) {
	e := newFixedEngine(t, testutil.IslandLayout())

	var coords []core.Coordinate
	for c := range e.Cells() {
		coords = append(coords, c)
	}
	require.Len(t, coords, 81)
	assert.Equal(t, core.NewCoordinate(0, 0), coords[0])
	assert.Equal(t, core.NewCoordinate(1, 0), coords[1])
	assert.Equal(t, core.NewCoordinate(0, 1), coords[9])
	assert.Equal(t, core.NewCoordinate(8, 8), coords[80])

	seen := 0
	for range e.Cells() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestEngine_Events(t *testing.T) {
	bus := events.NewEventBusWithLogger(*testutil.NopLogger())
	var types []string
	var ended *events.GameEndedEvent
	for _, typ := range []string{
		events.TypeGameStarted, events.TypeMinesPlaced, events.TypeCellsRevealed,
		events.TypeCellMarked, events.TypeGameEnded, events.TypeStateTransition,
	} {
		bus.SubscribeFunc(typ, func(ev events.Event) {
			types = append(types, ev.Type())
			if ge, ok := ev.(*events.GameEndedEvent); ok {
				ended = ge
			}
		})
	}

	e, err := NewEngine(GameConfig{
		Difficulty: core.Beginner,
		Placer:     mapgen.NewFixedPlacer(testutil.IslandLayout()...),
		Logger:     testutil.NopLogger(),
		EventBus:   bus,
		GameID:     "events-game",
	})
	require.NoError(t, err)

	e.Reveal(1, 1)
	e.Mark(4, 0)
	e.Reveal(8, 8)

	assert.Equal(t, []string{
		events.TypeGameStarted,
		events.TypeMinesPlaced,
		events.TypeStateTransition,
		events.TypeCellsRevealed,
		events.TypeCellMarked,
		events.TypeCellsRevealed,
		events.TypeStateTransition,
		events.TypeGameEnded,
	}, types)

	require.NotNil(t, ended)
	assert.False(t, ended.Won)
	assert.Equal(t, 3, ended.Moves)
	assert.Equal(t, "events-game", ended.GameID())
}

func TestEngine_BadLayoutPanics(t *testing.T) {
	e := newFixedEngine(t, []core.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}})

	testutil.AssertPanic(t, "mapgen: placer returned 2 mines, want 10", func() {
		e.Reveal(5, 5)
	})
}

func TestEngine_Logging(t *testing.T) {
	logger, buf := testutil.CaptureLogger(zerolog.DebugLevel)

	e, err := NewEngine(GameConfig{
		Difficulty: core.Beginner,
		Placer:     mapgen.NewFixedPlacer(testutil.IslandLayout()...),
		Logger:     logger,
		GameID:     "logged-game",
	})
	require.NoError(t, err)
	e.Reveal(1, 1)
	e.Reveal(4, 0)

	out := buf.String()
	assert.Contains(t, out, `"component":"GameEngine"`)
	assert.Contains(t, out, `"game_id":"logged-game"`)
	assert.Contains(t, out, "Engine created successfully")
	assert.Contains(t, out, "Mines placed")
	assert.Contains(t, out, `"revealed":16`)
	assert.Contains(t, out, "Mine revealed, game lost")
}
