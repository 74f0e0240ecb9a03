package game

import (
	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/rules"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
)

// Reveal uncovers (x, y) and returns the coordinates it newly revealed.
// Out-of-range coordinates are ignored. The first reveal of a game places
// the mines around it, so it is never a mine. Revealing an empty cell
// uncovers its whole empty island plus the numbered cells bordering it.
func (e *Engine) Reveal(x, y int) []core.Coordinate {
	if !e.board.InBounds(x, y) {
		e.logger.Debug().Int("x", x).Int("y", y).Msg("Reveal out of bounds ignored")
		return nil
	}

	origin := core.NewCoordinate(x, y)
	if !e.placed {
		e.placeMines(origin)
	}

	cell := e.board.GetCell(x, y)
	var revealed []core.Coordinate
	switch {
	case cell.IsEmpty():
		revealed = e.floodFill(origin)
	case cell.IsHidden():
		cell.Show()
		revealed = []core.Coordinate{origin}
	}

	if len(revealed) == 0 {
		return nil
	}

	hitMine := cell.IsMine()
	e.gameContext.Moves++
	e.logger.Debug().
		Int("x", x).
		Int("y", y).
		Int("revealed", len(revealed)).
		Bool("hit_mine", hitMine).
		Msg("Cells revealed")
	e.eventBus.Publish(events.NewCellsRevealedEvent(e.gameID, origin, revealed, hitMine))

	e.checkGameOver()
	return revealed
}

// floodFill reveals the 8-connected region of empty cells around start and
// the numbered cells on its border. The "already revealed" check is what
// keeps the traversal from revisiting cells.
func (e *Engine) floodFill(start core.Coordinate) []core.Coordinate {
	var revealed []core.Coordinate
	stack := []core.Coordinate{start}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := e.board.GetCell(c.X, c.Y)
		if cell == nil || cell.IsMine() || !cell.IsHidden() {
			continue
		}

		cell.Show()
		revealed = append(revealed, c)

		if cell.IsEmpty() {
			stack = append(stack, c.Neighbors()...)
		}
	}

	return revealed
}

// placeMines runs exactly once, on the first reveal.
func (e *Engine) placeMines(excluded core.Coordinate) {
	e.generator.PlaceMines(e.board, excluded)
	e.placed = true

	e.logger.Debug().
		Str("excluded", excluded.String()).
		Int("mines", e.totalMines).
		Msg("Mines placed")
	e.eventBus.Publish(events.NewMinesPlacedEvent(e.gameID, excluded, e.totalMines))

	if err := e.stateMachine.TransitionTo(states.PhasePlaced, "first reveal"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to enter placed phase")
	}
}

// checkGameOver moves the lifecycle into Won or Lost.
func (e *Engine) checkGameOver() {
	if e.stateMachine.CurrentPhase() != states.PhasePlaced {
		return
	}

	var target states.GamePhase
	var reason string
	switch e.winChecker.CheckGameOver(e.board) {
	case rules.OutcomeLost:
		target, reason = states.PhaseLost, "mine revealed"
	case rules.OutcomeWon:
		target, reason = states.PhaseWon, "all safe cells revealed"
	default:
		return
	}

	if err := e.stateMachine.TransitionTo(target, reason); err != nil {
		e.logger.Error().Err(err).Str("target", target.String()).Msg("Failed to enter terminal phase")
		return
	}
	e.eventBus.Publish(events.NewGameEndedEvent(
		e.gameID, target == states.PhaseWon, e.gameContext.GetElapsedTime(), e.gameContext.Moves,
	))
}
