// Package main runs a checkers game in the terminal, against another player
// at the same keyboard or against the computer.
package main

import (
	"flag"
	"fmt"
	"os"

	"checkers/internal/cli"
	"checkers/internal/client/display"
	"checkers/internal/computer"
	"checkers/internal/config"
	"checkers/internal/engine"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "Readline history file")
	flag.BoolVar(&cfg.Color, "color", cfg.Color, "Colour output on terminals")
	seed := flag.Uint64("seed", 0, "Seed for the computer player (0 picks one from the clock)")
	flag.Parse()

	out := display.Stdout(cfg.Color)

	var opts []cli.Option
	if *seed != 0 {
		opts = append(opts, cli.WithOpponent(func() engine.Opponent {
			return computer.NewRandom(*seed)
		}))
	}

	var in cli.LineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			HistoryFile:     cfg.HistoryFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
		})
		if err != nil {
			out.Error("%v", err)
			os.Exit(1)
		}
		defer rl.Close()
		in = rl
	} else {
		in = cli.NewScanner(os.Stdin, os.Stdout)
	}

	if err := cli.New(in, out, opts...).Run(); err != nil {
		out.Error("%v", err)
		os.Exit(1)
	}
}
