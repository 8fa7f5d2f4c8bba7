package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"checkers/internal/client/display"
	"checkers/internal/client/session"
	"checkers/internal/core"
)

var errNoGame = errors.New("no current game, use 'new' or 'join <gameId>'")

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Create a game and take seat X",
		Usage:       "new [human|computer]",
		Handler:     newGameHandler,
	})

	r.Register(&Command{
		Name:        "join",
		ShortName:   "j",
		Description: "Join a human game as seat O",
		Usage:       "join <gameId>",
		Handler:     joinGameHandler,
	})

	r.Register(&Command{
		Name:        "watch",
		ShortName:   "w",
		Description: "Follow a game without a seat",
		Usage:       "watch <gameId>",
		Handler:     watchGameHandler,
	})

	r.Register(&Command{
		Name:        "move",
		ShortName:   "m",
		Description: "Make a move",
		Usage:       "move <3C-4D|3C-5E-7C>",
		Handler:     moveHandler,
	})

	r.Register(&Command{
		Name:        "show",
		ShortName:   "s",
		Description: "Show board and game state",
		Usage:       "show",
		Handler:     showBoardHandler,
	})

	r.Register(&Command{
		Name:        "wait",
		ShortName:   "p",
		Description: "Wait for the opponent's move",
		Usage:       "wait",
		Handler:     waitHandler,
	})

	r.Register(&Command{
		Name:        "legal",
		ShortName:   "l",
		Description: "List legal destinations of a piece",
		Usage:       "legal <square>",
		Handler:     legalHandler,
	})

	r.Register(&Command{
		Name:        "state",
		ShortName:   "",
		Description: "Show raw game JSON",
		Usage:       "state",
		Handler:     gameStateHandler,
	})

	r.Register(&Command{
		Name:        "delete",
		ShortName:   "d",
		Description: "Delete the current game",
		Usage:       "delete",
		Handler:     deleteGameHandler,
	})
}

func newGameHandler(s *session.Session, args []string) error {
	opponent := core.PlayerHuman
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "h", "human":
		case "c", "computer":
			opponent = core.PlayerComputer
		default:
			return fmt.Errorf("usage: new [human|computer]")
		}
	}

	resp, err := s.Client.CreateGame(opponent)
	if err != nil {
		return err
	}

	s.SetGame(resp.Game.GameID, resp.Seat, resp.Token)
	s.Update(&resp.Game)

	s.Out.Printf(display.Green, "Game created: %s\n", resp.Game.GameID)
	s.Out.Printf(display.Plain, "You are seat %s.", s.Out.Turn(resp.Seat))
	if opponent == core.PlayerHuman {
		s.Out.Printf(display.Plain, " Share the game ID; the opponent joins with 'join %s'.", resp.Game.GameID)
	}
	s.Out.Println(display.Plain)
	return nil
}

func joinGameHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: join <gameId>")
	}

	resp, err := s.Client.JoinGame(args[0])
	if err != nil {
		return err
	}

	s.SetGame(resp.Game.GameID, resp.Seat, resp.Token)
	s.Update(&resp.Game)

	s.Out.Printf(display.Green, "Joined game: %s\n", resp.Game.GameID)
	s.Out.Printf(display.Plain, "You are seat %s. Turn: %s | State: %s | Moves: %d\n",
		s.Out.Turn(resp.Seat), s.Out.Turn(resp.Game.Turn), resp.Game.State, len(resp.Game.Moves))
	return nil
}

func watchGameHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: watch <gameId>")
	}

	resp, err := s.Client.GetGame(args[0])
	if err != nil {
		return err
	}

	s.SetGame(resp.GameID, "", "")
	s.Update(resp)
	s.Out.Printf(display.Green, "Watching game: %s\n", resp.GameID)
	return nil
}

func moveHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: move <3C-4D>")
	}
	if s.CurrentGame == "" {
		return errNoGame
	}
	if s.Token == "" {
		return fmt.Errorf("you are watching this game and hold no seat")
	}

	resp, err := s.Client.MakeMove(s.CurrentGame, s.Token, args[0])
	if err != nil {
		return err
	}
	s.Update(resp)

	s.Out.Println(display.Green, "Move accepted")
	for _, mv := range resp.LastMoves {
		if mv.Computer {
			s.Out.Printf(display.Magenta, "Computer played: %s\n", mv.Move)
		}
	}
	printOutcome(s, resp)
	return nil
}

func showBoardHandler(s *session.Session, args []string) error {
	if s.CurrentGame == "" {
		return errNoGame
	}

	game, err := s.Client.GetGame(s.CurrentGame)
	if err != nil {
		return err
	}
	board, err := s.Client.GetBoard(s.CurrentGame)
	if err != nil {
		return err
	}
	s.Update(game)

	s.Out.Println(display.Plain)
	s.Out.Board(board.Board)
	s.Out.Println(display.Plain)

	s.Out.Printf(display.Plain, "Turn: %s | State: %s | Moves: %d | Pieces X:%d O:%d\n",
		s.Out.Turn(game.Turn), game.State, len(game.Moves), game.Pieces.X, game.Pieces.O)

	if len(game.Moves) > 0 {
		var sb strings.Builder
		for i, move := range game.Moves {
			if i%2 == 0 {
				fmt.Fprintf(&sb, " %d.%s", i/2+1, move)
			} else {
				fmt.Fprintf(&sb, " %s", move)
			}
		}
		s.Out.Printf(display.Plain, "History:%s\n", sb.String())
	}
	printOutcome(s, game)
	return nil
}

func waitHandler(s *session.Session, args []string) error {
	if s.CurrentGame == "" {
		return errNoGame
	}
	if s.MyTurn() {
		s.Out.Println(display.Yellow, "It is already your turn")
		return nil
	}

	prev := s.State
	moveCount := s.LastMoveCount
	s.Out.Printf(display.Cyan, "Waiting for a move (move count: %d)...\n", moveCount)

	start := time.Now()
	resp, err := s.Client.WaitGame(s.CurrentGame, moveCount)
	if err != nil {
		return err
	}
	s.Update(resp)

	if len(resp.Moves) == moveCount {
		if prev != nil && prev.State == core.StateWaiting.String() && resp.State != prev.State {
			s.Out.Println(display.Green, "Opponent joined")
			printOutcome(s, resp)
			return nil
		}
		s.Out.Printf(display.Yellow, "No moves after %s\n", time.Since(start).Round(time.Second))
		return nil
	}
	for _, mv := range resp.Moves[min(moveCount, len(resp.Moves)):] {
		s.Out.Printf(display.Magenta, "Played: %s\n", mv)
	}
	printOutcome(s, resp)
	return nil
}

func legalHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: legal <square>")
	}
	if s.CurrentGame == "" {
		return errNoGame
	}

	resp, err := s.Client.GetDestinations(s.CurrentGame, args[0])
	if err != nil {
		return err
	}
	if len(resp.Destinations) == 0 {
		s.Out.Printf(display.Yellow, "The piece on %s cannot move\n", resp.From)
		return nil
	}
	s.Out.Printf(display.Plain, "%s can move to %s\n", resp.From, strings.Join(resp.Destinations, ", "))
	if len(resp.Captures) > 0 {
		s.Out.Printf(display.Plain, "Captures: %s\n", strings.Join(resp.Captures, ", "))
	}
	return nil
}

func gameStateHandler(s *session.Session, args []string) error {
	if s.CurrentGame == "" {
		return errNoGame
	}

	resp, err := s.Client.GetGame(s.CurrentGame)
	if err != nil {
		return err
	}
	s.Update(resp)

	s.Out.Println(display.Cyan, "Game State:")
	s.Out.JSON(resp)
	return nil
}

func deleteGameHandler(s *session.Session, args []string) error {
	if s.CurrentGame == "" {
		return errNoGame
	}

	gameID := s.CurrentGame
	if err := s.Client.DeleteGame(gameID, s.Token); err != nil {
		return err
	}
	s.ClearGame()

	s.Out.Printf(display.Green, "Game deleted: %s\n", gameID)
	return nil
}

// printOutcome reports the winner or whose turn it is.
func printOutcome(s *session.Session, g *core.GameResponse) {
	switch {
	case g.Winner != "":
		if g.Winner == s.Seat {
			s.Out.Println(display.Green, "Game over: you win!")
		} else {
			s.Out.Printf(display.Yellow, "Game over: player %s wins\n", s.Out.Turn(g.Winner))
		}
	case g.State == core.StateWaiting.String():
		s.Out.Println(display.Yellow, "Waiting for an opponent to join")
	case s.MyTurn():
		s.Out.Printf(display.Plain, "Player %s - your turn\n", s.Out.Turn(s.Seat))
	default:
		s.Out.Printf(display.Plain, "Player %s to move\n", s.Out.Turn(g.Turn))
	}
}
