package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
)

// Game is everything the console needs from an engine.
type Game interface {
	Mover
	BoardView
	IsGameRunning() bool
	IsDefeat() bool
	MinesRemaining() int
	Phase() states.GamePhase
	Elapsed() time.Duration
}

// GameFactory builds a new game for the chosen level.
type GameFactory func(core.Difficulty) (Game, error)

// Options tunes the session.
type Options struct {
	// Difficulty skips the level prompt when set.
	Difficulty *core.Difficulty
	ClearLines int
	Color      bool
}

// Session runs one interactive game over a line-oriented reader and writer.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	opts    Options
	newGame GameFactory
	render  Renderer
	logger  zerolog.Logger
}

// errEOF ends a session when input runs out.
var errEOF = errors.New("input closed")

// NewSession creates a session reading commands from in and writing to out.
func NewSession(in io.Reader, out io.Writer, newGame GameFactory, opts Options, logger zerolog.Logger) *Session {
	return &Session{
		in:      bufio.NewScanner(in),
		out:     out,
		opts:    opts,
		newGame: newGame,
		render:  Renderer{Color: opts.Color},
		logger:  logger.With().Str("component", "Console").Logger(),
	}
}

// Run plays a single game to the end. Closed input ends the session
// quietly. Cancelling ctx stops before the next command is read.
func (s *Session) Run(ctx context.Context) error {
	s.printBanner()

	difficulty, err := s.chooseDifficulty()
	if err != nil {
		return s.quit(err)
	}

	g, err := s.newGame(difficulty)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	s.logger.Info().Str("difficulty", difficulty.String()).Msg("Game started")

	s.printInstructions()
	if _, err := s.readLine(); err != nil {
		return s.quit(err)
	}

	for g.IsGameRunning() {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, strings.Repeat("\n", s.opts.ClearLines))
		fmt.Fprint(s.out, s.render.Render(g))
		fmt.Fprintf(s.out, "Mines left: %d\n", g.MinesRemaining())
		fmt.Fprint(s.out, "Command: ")

		line, err := s.readLine()
		if err != nil {
			return s.quit(err)
		}

		cmd, ok := ParseCommand(line)
		if !ok {
			s.logger.Debug().Str("input", line).Msg("Ignoring unrecognized command")
			continue
		}
		s.logger.Debug().Str("verb", cmd.Verb.String()).Int("x", cmd.X).Int("y", cmd.Y).Msg("Applying command")
		cmd.Apply(g)
	}

	fmt.Fprint(s.out, s.render.Render(g))
	fmt.Fprint(s.out, "\n\n")
	if g.IsDefeat() {
		fmt.Fprintln(s.out, "You lost! Better luck the next time!")
	} else {
		fmt.Fprintln(s.out, "Congratulations! You won!")
	}

	if phase := g.Phase(); phase.IsTerminal() {
		elapsed := g.Elapsed().Round(time.Second)
		fmt.Fprintf(s.out, "Time: %s\n", elapsed)
		s.logger.Info().Str("phase", phase.String()).Dur("elapsed", elapsed).Msg("Game over")
	}
	return nil
}

func (s *Session) printBanner() {
	fmt.Fprintln(s.out, "----------------------")
	fmt.Fprintln(s.out, "|    Mine-Sweeper    |")
	fmt.Fprintln(s.out, "----------------------")
	fmt.Fprintln(s.out)
}

func (s *Session) printInstructions() {
	fmt.Fprintln(s.out, "--INSTRUCTIONS--")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Show the content of a square: s x y (example: s 2 3).")
	fmt.Fprintln(s.out, "Mark a square as a mine: m x y (example: m 2 3).")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Press enter to continue...")
}

// chooseDifficulty prompts for a level unless one was configured.
// Unrecognized answers fall back to Beginner.
func (s *Session) chooseDifficulty() (core.Difficulty, error) {
	if s.opts.Difficulty != nil {
		return *s.opts.Difficulty, nil
	}

	fmt.Fprintln(s.out, "Welcome to Mine-Sweeper, please choose a level:")
	fmt.Fprintln(s.out, "1- Beginner (9x9 and 10 mines)")
	fmt.Fprintln(s.out, "2- Intermediate (16x16 and 40 mines)")

	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	d, err := core.ParseDifficulty(line)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Defaulting to beginner")
		return core.Beginner, nil
	}
	return d, nil
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errEOF
	}
	return strings.TrimRight(s.in.Text(), " \t\r"), nil
}

func (s *Session) quit(err error) error {
	if errors.Is(err, errEOF) {
		s.logger.Info().Msg("Input closed, leaving game")
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}
