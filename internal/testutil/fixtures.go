package testutil

import (
	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
)

// IslandLayout is a Beginner layout with a walled 4x4 pocket in the top
// left corner. Revealing any cell in the 3x3 block at (0..2, 0..2) clears
// those 9 empty cells plus the 7 numbered cells that border them.
func IslandLayout() []core.Coordinate {
	mines := make([]core.Coordinate, 0, 10)
	for y := 0; y <= 4; y++ {
		mines = append(mines, core.NewCoordinate(4, y))
	}
	for x := 0; x <= 3; x++ {
		mines = append(mines, core.NewCoordinate(x, 4))
	}
	return append(mines, core.NewCoordinate(8, 8))
}

// IslandPocket lists the 16 cells a reveal inside the island uncovers.
func IslandPocket() []core.Coordinate {
	pocket := make([]core.Coordinate, 0, 16)
	for y := 0; y <= 3; y++ {
		for x := 0; x <= 3; x++ {
			pocket = append(pocket, core.NewCoordinate(x, y))
		}
	}
	return pocket
}

// CornerLayout puts all 10 Beginner mines along the bottom two rows away
// from (0,0) so a single reveal there wins the game.
func CornerLayout() []core.Coordinate {
	mines := make([]core.Coordinate, 0, 10)
	for x := 0; x < 9; x++ {
		mines = append(mines, core.NewCoordinate(x, 8))
	}
	return append(mines, core.NewCoordinate(8, 7))
}

// CreateMinedBoard builds a board with the given mines and adjacency counts
// already computed.
func CreateMinedBoard(width, height int, mines ...core.Coordinate) *core.Board {
	board := core.NewBoard(width, height)
	for _, m := range mines {
		board.GetCell(m.X, m.Y).SetMine()
	}
	mapgen.ComputeAdjacency(board)
	return board
}

// BarrierLayout splits a Beginner board with a mine column at x=4 that
// stops one row short of the bottom. Revealing (0,0) clears x=0..2 and the
// numbered column x=3; the gap at (4,8) is numbered too, so the empty
// region on the right, e.g. (6,8), is reachable only across numbered cells.
func BarrierLayout() []core.Coordinate {
	mines := make([]core.Coordinate, 0, 10)
	for y := 0; y <= 7; y++ {
		mines = append(mines, core.NewCoordinate(4, y))
	}
	return append(mines, core.NewCoordinate(8, 0), core.NewCoordinate(8, 1))
}
