// Package cli implements the "db" maintenance commands of checkers-server.
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"checkers/internal/server/storage"

	"golang.org/x/term"
)

// Env is where a command reads confirmations and writes results.
type Env struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool
}

// Run is the entry point for the CLI mini-app
func Run(args []string) error {
	return RunWith(Env{
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}, args)
}

func RunWith(env Env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand required: init, delete, query, moves")
	}

	switch args[0] {
	case "init":
		return runInit(env, args[1:])
	case "delete":
		return runDelete(env, args[1:])
	case "query":
		return runQuery(env, args[1:])
	case "moves":
		return runMoves(env, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func runInit(env Env, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("database path required")
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Fprintf(env.Out, "Database initialized at: %s\n", *path)
	return nil
}

func runDelete(env Env, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")
	force := fs.Bool("force", false, "Delete without confirmation")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("database path required")
	}

	if !*force {
		if !env.Interactive {
			return fmt.Errorf("refusing to delete without a terminal, use -force")
		}
		ok, err := confirm(env, fmt.Sprintf("Delete match journal %s?", *path))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(env.Out, "Aborted")
			return nil
		}
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	if err := store.DeleteDB(); err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}

	fmt.Fprintf(env.Out, "Database deleted: %s\n", *path)
	return nil
}

func confirm(env Env, question string) (bool, error) {
	fmt.Fprintf(env.Out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(env.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func runQuery(env Env, args []string) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")
	gameID := fs.String("gameId", "", "Game ID to filter (optional, * for all)")
	playerID := fs.String("playerId", "", "Player ID to filter, either seat (optional, * for all)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("database path required")
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	games, err := store.QueryGames(*gameID, *playerID)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(games) == 0 {
		fmt.Fprintln(env.Out, "No games found")
		return nil
	}

	w := tabwriter.NewWriter(env.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Game ID\tOpponent\tPlayer X\tPlayer O\tStart Time\tResult")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, g := range games {
		result := "in progress"
		if g.Result != nil {
			result = fmt.Sprintf("%s wins in %d moves", g.Result.Winner, g.Result.MoveCount)
		}
		opponent := "human"
		if g.OpponentType == 2 {
			opponent = "computer"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			short(g.GameID),
			opponent,
			short(g.XPlayerID),
			short(g.OPlayerID),
			g.StartTimeUTC.Format("2006-01-02 15:04:05"),
			result,
		)
	}
	w.Flush()

	fmt.Fprintf(env.Out, "\nFound %d game(s)\n", len(games))
	return nil
}

func runMoves(env Env, args []string) error {
	fs := flag.NewFlagSet("moves", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")
	gameID := fs.String("gameId", "", "Game ID (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("database path required")
	}
	if *gameID == "" {
		return fmt.Errorf("game ID required")
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	moves, err := store.QueryMoves(*gameID)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(moves) == 0 {
		fmt.Fprintln(env.Out, "No moves found")
		return nil
	}

	w := tabwriter.NewWriter(env.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPlayer\tMove\tCaptured\tTime")
	for _, m := range moves {
		player := m.Player
		if m.Computer {
			player += " (computer)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			m.MoveNumber, player, m.Notation, m.Captured,
			m.MoveTimeUTC.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
	return nil
}

func short(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}
