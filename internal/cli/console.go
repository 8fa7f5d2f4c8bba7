package cli

import (
	"errors"
	"io"
	"strings"

	"checkers/internal/client/display"
	"checkers/internal/computer"
	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/notation"

	"github.com/chzyer/readline"
)

// Mode is who plays seat O.
type Mode int

const (
	ModeNone Mode = iota
	ModePlayers
	ModeComputer
)

type Console struct {
	in          LineReader
	view        view
	newOpponent func() engine.Opponent

	eng   *engine.Engine
	mode  Mode
	moves []engine.Move
}

type Option func(*Console)

// WithOpponent replaces the random computer player.
func WithOpponent(fn func() engine.Opponent) Option {
	return func(c *Console) {
		c.newOpponent = fn
	}
}

func New(in LineReader, out *display.Display, opts ...Option) *Console {
	c := &Console{
		in:   in,
		view: view{d: out},
		newOpponent: func() engine.Opponent {
			return computer.New()
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errQuit ends Run without an error.
var errQuit = errors.New("quit")

// Run plays games until the user quits or input ends.
func (c *Console) Run() error {
	c.view.welcome()
	for {
		mode, err := c.selectMode()
		if err == nil {
			err = c.play(mode)
		}
		if errors.Is(err, errQuit) {
			c.view.message("Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	c.in.SetPrompt(prompt)
	line, err := c.in.Readline()
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return "", errQuit
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) selectMode() (Mode, error) {
	for {
		line, err := c.readLine(c.view.d.Prompt("Play another player (P) or the computer (C)?"))
		if err != nil {
			return ModeNone, err
		}
		switch strings.ToUpper(line) {
		case "P":
			return ModePlayers, nil
		case "C":
			return ModeComputer, nil
		case "QUIT", "EXIT", "Q":
			return ModeNone, errQuit
		case "":
		default:
			c.view.d.Error("Please answer P or C.")
		}
	}
}

func (c *Console) start(mode Mode) {
	c.mode = mode
	c.moves = nil
	if mode == ModeComputer {
		c.eng = engine.New(engine.WithOpponent(c.newOpponent()))
		c.view.message("You are X. The computer plays O.")
	} else {
		c.eng = engine.New()
	}
}

func (c *Console) play(mode Mode) error {
	c.start(mode)
	c.view.board(c.eng.Board())

	for {
		if c.eng.HasWinner() {
			winner, _ := c.eng.Winner()
			c.view.gameOver(winner)
			return nil
		}

		line, err := c.readLine(c.prompt())
		if err != nil {
			return err
		}

		cmd := parseCommand(line)
		switch cmd.Type {
		case CmdNone:
		case CmdQuit:
			return errQuit
		case CmdHelp:
			c.view.help()
		case CmdHistory:
			c.view.history(c.moves)
		case CmdMoves:
			c.showMoves(cmd.Args)
		case CmdMove:
			if !c.move(cmd.Args[0]) {
				continue
			}
			c.view.board(c.eng.Board())
			if c.mode == ModeComputer && c.eng.Turn() == engine.ComputerSeat && !c.eng.Finished() {
				c.view.message("The game cannot continue.")
				return nil
			}
		}
	}
}

func (c *Console) prompt() string {
	turn := c.eng.Turn()
	return c.view.d.Prompt("Player " + c.view.d.Turn(turn.String()) + " - your turn")
}

// move submits one move for the seat to move. It reports whether the board
// changed.
func (c *Console) move(text string) bool {
	path, err := notation.ParseMove(text)
	if err != nil {
		c.view.rejected(err)
		return false
	}

	actor := c.eng.Turn()
	if c.mode == ModeComputer {
		actor = core.PlayerX
	}

	out, err := c.eng.Submit(actor, path)
	if err != nil {
		c.view.rejected(err)
		return false
	}

	c.moves = append(c.moves, out.Moves...)
	if c.mode == ModeComputer {
		for _, mv := range out.Moves {
			c.view.played(mv)
		}
	}
	if out.ReplyErr != nil && !out.Finished {
		// The engine leaves the turn with the computer; nothing else can move.
		c.view.d.Error("The computer could not move: %v", out.ReplyErr)
	}
	return true
}

func (c *Console) showMoves(args []string) {
	if len(args) != 1 {
		c.view.message("Usage: moves <square>, e.g. moves 3C")
		return
	}
	from, err := notation.ParseCoordinate(args[0])
	if err != nil {
		c.view.rejected(err)
		return
	}
	dests, err := c.eng.Destinations(from)
	if err != nil {
		c.view.d.Error("There is no piece on %s.", from)
		return
	}
	if len(dests) == 0 {
		c.view.message("The piece on %s cannot move.", from)
		return
	}
	c.view.message("%s can move to %s", from, strings.Join(notation.FormatAll(dests), ", "))
}
