package mapgen

import (
	"fmt"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Source is the randomness a RandomPlacer draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Placer chooses mine positions for a board. It must not mutate the board
// and must never return the excluded coordinate.
type Placer interface {
	Place(b *core.Board, excluded core.Coordinate, count int) []int
}

// RandomPlacer samples uniformly random coordinates, rejecting the excluded
// one and any already taken, until count distinct positions are chosen.
type RandomPlacer struct {
	rng Source
}

// NewRandomPlacer creates a placer backed by rng
func NewRandomPlacer(rng Source) *RandomPlacer {
	return &RandomPlacer{rng: rng}
}

// Place implements Placer. Cells already holding a mine are skipped and not
// counted. It panics when fewer than count free cells remain, since rejection
// sampling would otherwise never finish.
func (p *RandomPlacer) Place(b *core.Board, excluded core.Coordinate, count int) []int {
	free := b.CountIf(func(c *core.Cell) bool { return !c.IsMine() })
	if excluded.IsValid(b.W, b.H) && !b.C[excluded.ToIndex(b.W)].IsMine() {
		free--
	}
	if count > free {
		panic(fmt.Sprintf("mapgen: cannot place %d mines in %d free cells", count, free))
	}

	taken := make(map[int]bool, count)
	placed := make([]int, 0, count)
	for len(placed) < count {
		x, y := p.rng.Intn(b.W), p.rng.Intn(b.H)
		if x == excluded.X && y == excluded.Y {
			continue
		}
		idx := b.Idx(x, y)
		if taken[idx] || b.C[idx].IsMine() {
			continue
		}
		taken[idx] = true
		placed = append(placed, idx)
	}
	return placed
}

// FixedPlacer returns a hand-picked layout, ignoring the requested count.
type FixedPlacer struct {
	Mines []core.Coordinate
}

// NewFixedPlacer creates a placer that always yields mines.
func NewFixedPlacer(mines ...core.Coordinate) *FixedPlacer {
	return &FixedPlacer{Mines: mines}
}

func (p *FixedPlacer) Place(b *core.Board, _ core.Coordinate, _ int) []int {
	out := make([]int, 0, len(p.Mines))
	for _, c := range p.Mines {
		out = append(out, c.ToIndex(b.W))
	}
	return out
}

// MineConfig holds configuration for mine placement
type MineConfig struct {
	Mines int
}

// Generator places mines on a board through a Placer and numbers the rest.
type Generator struct {
	config MineConfig
	placer Placer
}

// NewGenerator creates a new mine generator
func NewGenerator(config MineConfig, placer Placer) *Generator {
	return &Generator{
		config: config,
		placer: placer,
	}
}

// PlaceMines asks the placer for a layout that avoids excluded, checks it,
// sets the mines and computes adjacency counts for every other cell.
// It returns the board indices that received a mine.
func (g *Generator) PlaceMines(b *core.Board, excluded core.Coordinate) []int {
	placed := g.placer.Place(b, excluded, g.config.Mines)
	if err := validatePlacement(b, excluded, g.config.Mines, placed); err != nil {
		panic("mapgen: " + err.Error())
	}

	for _, idx := range placed {
		b.C[idx].SetMine()
	}
	ComputeAdjacency(b)
	return placed
}

func validatePlacement(b *core.Board, excluded core.Coordinate, want int, placed []int) error {
	if len(placed) != want {
		return fmt.Errorf("placer returned %d mines, want %d", len(placed), want)
	}
	excludedIdx := -1
	if excluded.IsValid(b.W, b.H) {
		excludedIdx = excluded.ToIndex(b.W)
	}
	seen := make(map[int]bool, len(placed))
	for _, idx := range placed {
		switch {
		case idx < 0 || idx >= b.Size():
			return fmt.Errorf("mine index %d out of range", idx)
		case idx == excludedIdx:
			return fmt.Errorf("mine placed on excluded cell %s", excluded)
		case seen[idx]:
			return fmt.Errorf("mine index %d placed twice", idx)
		}
		seen[idx] = true
	}
	return nil
}

// ComputeAdjacency sets every non-mine cell to Empty or Numbered(n) from the
// number of mines among its eight neighbours.
func ComputeAdjacency(b *core.Board) {
	for idx := range b.C {
		cell := &b.C[idx]
		if cell.IsMine() {
			continue
		}
		x, y := b.XY(idx)
		if n := b.AdjacentMines(x, y); n == 0 {
			cell.SetEmpty()
		} else {
			cell.SetValue(n)
		}
	}
}
