package mapgen

import (
	"math/rand"
	"testing"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRNG provides a random number generator with a fixed seed for deterministic tests.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// scriptedSource replays a fixed sequence of values, wrapping around.
type scriptedSource struct {
	values []int
	pos    int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

func countMines(b *core.Board) int {
	return b.CountIf(func(c *core.Cell) bool { return c.IsMine() })
}

func TestNewGenerator(t *testing.T) {
	placer := NewRandomPlacer(newTestRNG())
	generator := NewGenerator(MineConfig{Mines: 10}, placer)

	require.NotNil(t, generator)
	assert.Equal(t, 10, generator.config.Mines)
	assert.Same(t, placer, generator.placer)
}

func TestRandomPlacer_ExcludesFirstMove(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		board := core.NewBoard(9, 9)
		excluded := core.NewCoordinate(int(seed%9), int(seed/9%9))
		placer := NewRandomPlacer(rand.New(rand.NewSource(seed)))

		placed := placer.Place(board, excluded, 10)

		require.Len(t, placed, 10)
		seen := make(map[int]bool)
		for _, idx := range placed {
			assert.NotEqual(t, excluded.ToIndex(9), idx, "seed %d placed a mine on the excluded cell", seed)
			assert.False(t, seen[idx], "seed %d placed index %d twice", seed, idx)
			seen[idx] = true
		}
		assert.Equal(t, 0, countMines(board), "Place must not mutate the board")
	}
}

func TestRandomPlacer_RejectionSampling(t *testing.T) {
	// 3x1 board: (0,0) is excluded, so (0,0) and repeats of (1,0) are rejected.
	board := core.NewBoard(3, 1)
	src := &scriptedSource{values: []int{0, 0, 1, 0, 1, 0, 2, 0}}
	placer := NewRandomPlacer(src)

	placed := placer.Place(board, core.NewCoordinate(0, 0), 2)

	assert.Equal(t, []int{1, 2}, placed)
}

func TestRandomPlacer_FillsAllButExcluded(t *testing.T) {
	board := core.NewBoard(4, 4)
	placer := NewRandomPlacer(newTestRNG())

	placed := placer.Place(board, core.NewCoordinate(2, 2), 15)

	assert.Len(t, placed, 15)
	assert.NotContains(t, placed, board.Idx(2, 2))
}

func TestRandomPlacer_PanicsWhenImpossible(t *testing.T) {
	board := core.NewBoard(3, 3)
	placer := NewRandomPlacer(newTestRNG())

	assert.Panics(t, func() {
		placer.Place(board, core.NewCoordinate(0, 0), 9)
	})
}

func TestGenerator_PlaceMinesCount(t *testing.T) {
	for _, d := range []core.Difficulty{core.Beginner, core.Intermediate} {
		t.Run(d.String(), func(t *testing.T) {
			p, err := d.Preset()
			require.NoError(t, err)

			board := core.NewBoard(p.Width, p.Height)
			gen := NewGenerator(MineConfig{Mines: p.Mines}, NewRandomPlacer(newTestRNG()))
			placed := gen.PlaceMines(board, core.NewCoordinate(0, 0))

			assert.Len(t, placed, p.Mines)
			assert.Equal(t, p.Mines, countMines(board))
			assert.False(t, board.C[0].IsMine())
		})
	}
}

func TestGenerator_RejectsBadPlacements(t *testing.T) {
	tests := []struct {
		name  string
		mines []core.Coordinate
	}{
		{"wrong count", []core.Coordinate{{X: 1, Y: 1}}},
		{"on excluded cell", []core.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{"duplicate", []core.Coordinate{{X: 1, Y: 1}, {X: 1, Y: 1}}},
		{"out of range", []core.Coordinate{{X: 1, Y: 1}, {X: 0, Y: 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := core.NewBoard(3, 3)
			gen := NewGenerator(MineConfig{Mines: 2}, NewFixedPlacer(tt.mines...))
			assert.Panics(t, func() { gen.PlaceMines(board, core.NewCoordinate(0, 0)) })
		})
	}
}

func TestComputeAdjacency(t *testing.T) {
	// . 1 M
	// 1 2 1
	// M 1 .
	board := core.NewBoard(3, 3)
	gen := NewGenerator(MineConfig{Mines: 2}, NewFixedPlacer(
		core.NewCoordinate(2, 0),
		core.NewCoordinate(0, 2),
	))
	gen.PlaceMines(board, core.NewCoordinate(0, 0))

	expected := [][]int{
		{0, 1, -1},
		{1, 2, 1},
		{-1, 1, 0},
	}
	for y, row := range expected {
		for x, want := range row {
			cell := board.GetCell(x, y)
			switch want {
			case -1:
				assert.True(t, cell.IsMine(), "(%d,%d) should be a mine", x, y)
			case 0:
				assert.True(t, cell.IsEmpty(), "(%d,%d) should be empty", x, y)
			default:
				require.True(t, cell.IsNumbered(), "(%d,%d) should be numbered", x, y)
				assert.Equal(t, want, cell.Value(), "(%d,%d)", x, y)
			}
		}
	}
}

func TestComputeAdjacency_MatchesNeighborCount(t *testing.T) {
	board := core.NewBoard(16, 16)
	gen := NewGenerator(MineConfig{Mines: 40}, NewRandomPlacer(newTestRNG()))
	gen.PlaceMines(board, core.NewCoordinate(8, 8))

	for idx := range board.C {
		cell := &board.C[idx]
		if cell.IsMine() {
			continue
		}
		x, y := board.XY(idx)
		want := 0
		for _, n := range core.NewCoordinate(x, y).ValidNeighbors(16, 16) {
			if board.GetCell(n.X, n.Y).IsMine() {
				want++
			}
		}
		if want == 0 {
			assert.True(t, cell.IsEmpty(), "(%d,%d)", x, y)
		} else {
			assert.Equal(t, want, cell.Value(), "(%d,%d)", x, y)
		}
	}
}
