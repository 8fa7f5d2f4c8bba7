// Package cli is the local text console: two players at one keyboard, or one
// player against the computer.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"checkers/internal/board"
	"checkers/internal/client/display"
	"checkers/internal/core"
	"checkers/internal/engine"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMove
	CmdMoves
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// LineReader is the input side of the console. *readline.Instance satisfies
// it; so does the scanner returned by NewScanner.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

type scannerReader struct {
	sc     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewScanner reads lines from r and echoes prompts to out, for input that is
// not a terminal.
func NewScanner(r io.Reader, out io.Writer) LineReader {
	return &scannerReader{sc: bufio.NewScanner(r), out: out}
}

func (s *scannerReader) SetPrompt(p string) {
	s.prompt = p
}

func (s *scannerReader) Readline() (string, error) {
	fmt.Fprint(s.out, s.prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

func parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "moves", "m":
		return &Command{Type: CmdMoves, Args: args, Raw: input}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit", "q":
		return &Command{Type: CmdQuit}
	default:
		return &Command{Type: CmdMove, Args: []string{parts[0]}, Raw: input}
	}
}

// view prints console output.
type view struct {
	d *display.Display
}

func (v view) message(format string, a ...any) {
	v.d.Println(display.Plain, fmt.Sprintf(format, a...))
}

func (v view) board(b *board.Board) {
	v.d.Println(display.Plain)
	v.d.Board(b.Render())
	v.d.Println(display.Plain)
}

func (v view) welcome() {
	v.d.Println(display.Cyan, "Welcome to Checkers!")
	v.message("X plays the dark pieces from the bottom and moves first; O plays light.")
	v.message("Enter moves as row-column squares, e.g. 3C-4D, or 3C-5E-7C for a double capture.")
	v.message("Type 'help' at any time.")
	v.message("")
}

func (v view) help() {
	v.message(`Commands:
  <move>         Move a piece: 3C-4D, a jump 3C-5E, or a double jump 3C-5E-7C
  moves <square> List where the piece on a square can go, e.g. moves 3C
  history        Show the moves played so far
  help/?         Show this help message
  quit/exit      Leave the game`)
}

// rejected explains why a move was refused.
func (v view) rejected(err error) {
	switch engine.KindOf(err) {
	case engine.IllegalOwnership:
		v.d.Error("There is no piece of yours on that square.")
	case engine.IllegalDestination:
		v.d.Error("That piece cannot move there. Try 'moves <square>' to see its options.")
	case engine.IllegalChain:
		v.d.Error("Both hops of a double capture must jump an opponent piece.")
	case engine.BrokenChainRollback:
		v.d.Error("The second capture is not available. The board is unchanged.")
	case engine.GameFinished:
		v.d.Error("The game is over.")
	default:
		v.d.Error("Enter a move like 3C-4D or 3C-5E-7C.")
	}
}

func (v view) played(mv engine.Move) {
	if mv.Computer {
		v.d.Printf(display.Magenta, "Computer (%s): %s\n", mv.Player, mv)
	} else {
		v.d.Printf(display.Plain, "Player %s: %s\n", mv.Player, mv)
	}
	if n := len(mv.Captured); n == 1 {
		v.message("  captured a piece")
	} else if n > 1 {
		v.message("  captured %d pieces", n)
	}
}

func (v view) history(moves []engine.Move) {
	if len(moves) == 0 {
		v.message("No moves yet.")
		return
	}
	for i := 0; i < len(moves); i += 2 {
		line := fmt.Sprintf("%d. %s", i/2+1, moves[i])
		if i+1 < len(moves) {
			line += " | " + moves[i+1].String()
		}
		v.message("%s", line)
	}
}

func (v view) gameOver(winner core.Player) {
	v.d.Printf(display.Green, "\nGame over: Player %s wins!\n\n", winner)
}
